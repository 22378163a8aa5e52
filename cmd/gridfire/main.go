package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rfenner/gridfire/game"
	"github.com/rfenner/gridfire/terminal"
)

var (
	configFlag    = flag.String("config", "", "Path to YAML config file")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	seedFlag      = flag.Int64("seed", 0, "World generation seed (0 = from clock)")
	audioFlag     = flag.Bool("audio", false, "Enable sound")
)

func main() {
	// Ensure the terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\ngridfire crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := game.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridfire: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *audioFlag {
		cfg.Audio = true
	}

	var colorMode terminal.ColorMode
	switch *colorModeFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	term := terminal.New(colorMode)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gridfire: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, term)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "gridfire: %v\n", err)
		os.Exit(1)
	}

	runErr := g.Run()
	term.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "gridfire: %v\n", runErr)
		os.Exit(1)
	}
}
