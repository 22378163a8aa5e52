package game

import (
	"github.com/rfenner/gridfire/render"
)

// Player is the keyboard-controlled entity
type Player struct {
	X, Y   int
	Sprite *render.SpriteData
}

// Move attempts a single-step move and reports whether it happened.
// Blocked destinations (world edge, water, rock) leave the player in place.
func (p *Player) Move(dx, dy int, w *World) bool {
	nx, ny := p.X+dx, p.Y+dy
	if !w.Walkable(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Draw issues this tick's draw calls for the player
func (p *Player) Draw(fc *render.FrameController) {
	fc.DrawSprite(p.X, p.Y, p.Sprite, ZPlayer)
}
