package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds demo game tuning
type Config struct {
	// TickRate is logic updates per second
	TickRate int `yaml:"tick_rate"`
	// MinFrameMillis is the render frame-rate ceiling; ticks arriving
	// sooner than this after the last render are skipped
	MinFrameMillis int `yaml:"min_frame_millis"`
	// NPCCount is how many wanderers to spawn
	NPCCount int `yaml:"npc_count"`
	// Audio enables movement/collision blips
	Audio bool `yaml:"audio"`
	// ShowStats enables the diagnostics HUD row
	ShowStats bool `yaml:"show_stats"`
	// Seed fixes world generation; 0 derives one from the clock
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the built-in tuning
func DefaultConfig() Config {
	return Config{
		TickRate:       30,
		MinFrameMillis: 15,
		NPCCount:       6,
		Audio:          false,
		ShowStats:      true,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	if cfg.MinFrameMillis < 0 {
		cfg.MinFrameMillis = 0
	}
	if cfg.NPCCount < 0 {
		cfg.NPCCount = 0
	}

	return cfg, nil
}
