package game

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/rfenner/gridfire/render"
)

type tileKind uint8

const (
	tileGrass tileKind = iota
	tileWater
	tileRock
)

// Terrain visuals are authored as tcell styles and bridged to style tokens
// once at package init; the render core only sees the tokens
var (
	styleGrass = render.StyleToken(tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(58, 96, 52)))
	styleWater = render.StyleToken(tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(52, 90, 170)).
		Background(tcell.NewRGBColor(20, 32, 64)))
	styleRock = render.StyleToken(tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(128, 128, 136)))
)

var tileGlyphs = map[tileKind]struct {
	glyph rune
	style string
}{
	tileGrass: {'░', styleGrass},
	tileWater: {'▓', styleWater},
	tileRock:  {'▒', styleRock},
}

// decoration is a static sprite placed on the terrain
type decoration struct {
	X, Y   int
	Sprite *render.SpriteData
}

// World is the static terrain the player and NPCs move across
type World struct {
	Width  int
	Height int

	tiles []tileKind
	decor []decoration
}

// NewWorld generates terrain: grass with scattered water pools and rock
// patches, plus sprite decorations placed on walkable ground
func NewWorld(width, height int, seed int64, decorSprites []*render.SpriteData) *World {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	w := &World{
		Width:  width,
		Height: height,
		tiles:  make([]tileKind, width*height),
	}

	rng := rand.New(rand.NewSource(seed))

	// Water pools
	for i := 0; i < width*height/300+1; i++ {
		w.blob(rng, tileWater, 3+rng.Intn(4))
	}
	// Rock patches
	for i := 0; i < width*height/400+1; i++ {
		w.blob(rng, tileRock, 2+rng.Intn(3))
	}

	// Decorations on walkable ground
	for i := 0; i < width*height/250 && len(decorSprites) > 0; i++ {
		x := rng.Intn(width)
		y := rng.Intn(height)
		if !w.Walkable(x, y) {
			continue
		}
		w.decor = append(w.decor, decoration{
			X:      x,
			Y:      y,
			Sprite: decorSprites[rng.Intn(len(decorSprites))],
		})
	}

	return w
}

// blob fills a rough diamond of the given radius with a tile kind
func (w *World) blob(rng *rand.Rand, kind tileKind, radius int) {
	cx := rng.Intn(w.Width)
	cy := rng.Intn(w.Height)

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if abs(dx)+abs(dy) > radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
				continue
			}
			w.tiles[y*w.Width+x] = kind
		}
	}
}

// Walkable reports whether an entity may stand at (x, y)
func (w *World) Walkable(x, y int) bool {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return false
	}
	return w.tiles[y*w.Width+x] == tileGrass
}

// Draw issues terrain and decoration draw calls for this tick. Everything
// is redrawn every tick; the diff engine reduces it to actual changes.
func (w *World) Draw(fc *render.FrameController) {
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			t := tileGlyphs[w.tiles[y*w.Width+x]]
			fc.DrawGlyph(x, y, t.glyph, t.style, ZTerrain)
		}
	}

	for _, d := range w.decor {
		fc.DrawSprite(d.X, d.Y, d.Sprite, ZDecor)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
