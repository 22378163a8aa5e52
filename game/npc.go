package game

import (
	"math/rand"

	"github.com/rfenner/gridfire/render"
)

// NPC is an autonomous wanderer. Movement is a biased random walk: keep the
// current direction most steps, occasionally turn, always respect terrain.
type NPC struct {
	X, Y   int
	Sprite *render.SpriteData

	dirX, dirY int
	stepEvery  int // ticks between movement attempts
	phase      int

	rng *rand.Rand
}

// NewNPC places a wanderer at (x, y)
func NewNPC(x, y int, s *render.SpriteData, stepEvery int, rng *rand.Rand) *NPC {
	if stepEvery < 1 {
		stepEvery = 1
	}
	n := &NPC{
		X:         x,
		Y:         y,
		Sprite:    s,
		stepEvery: stepEvery,
		rng:       rng,
	}
	n.turn()
	return n
}

// Update advances the walk by one tick
func (n *NPC) Update(w *World) {
	n.phase++
	if n.phase%n.stepEvery != 0 {
		return
	}

	if n.rng.Intn(5) == 0 {
		n.turn()
	}

	nx, ny := n.X+n.dirX, n.Y+n.dirY
	if !w.Walkable(nx, ny) {
		n.turn()
		return
	}
	n.X, n.Y = nx, ny
}

// Draw issues this tick's draw calls for the NPC
func (n *NPC) Draw(fc *render.FrameController) {
	fc.DrawSprite(n.X, n.Y, n.Sprite, ZNPC)
}

func (n *NPC) turn() {
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	d := dirs[n.rng.Intn(4)]
	n.dirX, n.dirY = d[0], d[1]
}
