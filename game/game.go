package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rfenner/gridfire/audio"
	"github.com/rfenner/gridfire/engine"
	"github.com/rfenner/gridfire/render"
	"github.com/rfenner/gridfire/sprite"
	"github.com/rfenner/gridfire/status"
	"github.com/rfenner/gridfire/terminal"
)

var styleHUD = render.StyleToken(tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(220, 220, 230)).
	Background(tcell.NewRGBColor(40, 40, 56)))

// Game wires the demo scene (terrain, player, wandering NPCs) to the frame
// controller. Input and resize events arrive asynchronously and are queued;
// all grid mutation happens inside the tick, so writes issued during tick N
// are visible exactly in tick N's diff.
type Game struct {
	cfg  Config
	term *terminal.Terminal

	fc     *render.FrameController
	sched  *engine.Scheduler
	reg    *status.Registry
	sounds *audio.SoundManager

	world  *World
	player *Player
	npcs   []*NPC
	decor  []*render.SpriteData
	seed   int64

	showStats bool
	audioOn   bool

	mu      sync.Mutex
	pending []Action
	resize  *terminal.ResizeEvent

	quitCh   chan struct{}
	quitOnce sync.Once
}

// New builds a game sized to the current terminal
func New(cfg Config, term *terminal.Terminal) (*Game, error) {
	sheet, err := sprite.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite sheet: %w", err)
	}

	playerSprite := sheet["player"]
	if playerSprite == nil {
		return nil, fmt.Errorf("sprite sheet has no player sprite")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var decor []*render.SpriteData
	for _, name := range []string{"tree", "boulder"} {
		if s := sheet[name]; s != nil {
			decor = append(decor, s)
		}
	}

	width, height := term.Size()
	world := NewWorld(width, height, seed, decor)

	fc := render.NewFrameController(
		term.Output(),
		width, height,
		time.Duration(cfg.MinFrameMillis)*time.Millisecond,
		engine.NewTimeProvider(),
	)

	reg := status.NewRegistry()
	fc.AttachStatus(reg)

	rng := rand.New(rand.NewSource(seed + 1))

	px, py := nearestWalkable(world, width/2, height/2)
	g := &Game{
		cfg:       cfg,
		term:      term,
		fc:        fc,
		reg:       reg,
		world:     world,
		player:    &Player{X: px, Y: py, Sprite: playerSprite},
		decor:     decor,
		seed:      seed,
		showStats: cfg.ShowStats,
		quitCh:    make(chan struct{}),
	}

	var npcSprites []*render.SpriteData
	for _, name := range []string{"crawler", "slime"} {
		if s := sheet[name]; s != nil {
			npcSprites = append(npcSprites, s)
		}
	}
	for i := 0; i < cfg.NPCCount && len(npcSprites) > 0; i++ {
		x, y := nearestWalkable(world, rng.Intn(width), rng.Intn(height))
		g.npcs = append(g.npcs, NewNPC(
			x, y,
			npcSprites[i%len(npcSprites)],
			2+rng.Intn(3),
			rng,
		))
	}

	if cfg.Audio {
		g.sounds = audio.NewSoundManager()
		if err := g.sounds.Initialize(); err == nil {
			g.audioOn = true
		}
	}

	return g, nil
}

// Run starts the tick scheduler and blocks until the player quits
func (g *Game) Run() error {
	interval := time.Second / time.Duration(g.cfg.TickRate)
	g.sched = engine.NewScheduler(interval, g.tick)
	g.sched.Start()
	defer func() {
		g.sched.Stop()
		g.fc.Stop()
		if g.sounds != nil {
			g.sounds.Cleanup()
		}
	}()

	for {
		select {
		case <-g.quitCh:
			return nil

		case ev := <-g.term.Keys():
			if a := ActionFor(ev); a != ActionNone {
				g.mu.Lock()
				g.pending = append(g.pending, a)
				g.mu.Unlock()
			}

		case rs := <-g.term.ResizeChan():
			g.mu.Lock()
			g.resize = &rs
			g.mu.Unlock()
		}
	}
}

// tick is one update-render cycle, run on the scheduler goroutine. It is
// the only place the frame controller is touched after construction.
func (g *Game) tick() {
	g.mu.Lock()
	acts := g.pending
	g.pending = nil
	rs := g.resize
	g.resize = nil
	g.mu.Unlock()

	if rs != nil {
		g.applyResize(rs.Width, rs.Height)
	}

	for _, a := range acts {
		g.apply(a)
	}

	select {
	case <-g.quitCh:
		return
	default:
	}

	for _, n := range g.npcs {
		n.Update(g.world)
	}

	g.world.Draw(g.fc)
	for _, n := range g.npcs {
		n.Draw(g.fc)
	}
	g.player.Draw(g.fc)

	if g.showStats {
		g.drawHUD()
	}

	g.fc.Render()
}

func (g *Game) apply(a Action) {
	switch a {
	case ActionQuit:
		g.quitOnce.Do(func() { close(g.quitCh) })

	case ActionToggleStats:
		g.showStats = !g.showStats

	case ActionToggleAudio:
		g.toggleAudio()

	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		dx, dy := a.Delta()
		moved := g.player.Move(dx, dy, g.world)
		if g.audioOn {
			if moved {
				g.sounds.PlayStep()
			} else {
				g.sounds.PlayBump()
			}
		}
	}
}

func (g *Game) toggleAudio() {
	if g.audioOn {
		g.audioOn = false
		return
	}
	if g.sounds == nil {
		g.sounds = audio.NewSoundManager()
	}
	if err := g.sounds.Initialize(); err == nil {
		g.audioOn = true
	}
}

// applyResize rebuilds the world at the new dimensions and clamps entities
// back onto walkable ground. The frame controller resize forces a full
// redraw on the next render.
func (g *Game) applyResize(width, height int) {
	g.fc.Resize(width, height)
	g.world = NewWorld(width, height, g.seed, g.decor)

	g.player.X, g.player.Y = nearestWalkable(g.world, g.player.X, g.player.Y)
	for _, n := range g.npcs {
		n.X, n.Y = nearestWalkable(g.world, n.X, n.Y)
	}
}

// drawHUD renders the diagnostics row: a background strip punched at the
// HUD layer, then the frame counters over it
func (g *Game) drawHUD() {
	st := g.fc.Stats()
	g.fc.ClearRect(0, 0, g.world.Width, 1, ZHUD)
	line := fmt.Sprintf(" frames:%d skipped:%d changed:%d occupancy:%.0f%% ",
		st.Frames, st.Skipped, st.LastChanged, st.Occupancy*100)
	g.fc.DrawText(0, 0, line, styleHUD, ZHUD)
}

// nearestWalkable scans outward from (x, y) for walkable ground. Falls back
// to (0, 0) on a world with no grass at all.
func nearestWalkable(w *World, x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if x >= w.Width {
		x = w.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= w.Height {
		y = w.Height - 1
	}

	maxR := w.Width + w.Height
	for r := 0; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx)+abs(dy) != r {
					continue
				}
				if w.Walkable(x+dx, y+dy) {
					return x + dx, y + dy
				}
			}
		}
	}
	return 0, 0
}
