package game

import (
	"bytes"
	"testing"
	"time"

	"github.com/rfenner/gridfire/render"
)

func TestWorldBounds(t *testing.T) {
	w := NewWorld(40, 20, 7, nil)

	if w.Walkable(-1, 0) || w.Walkable(0, -1) || w.Walkable(40, 0) || w.Walkable(0, 20) {
		t.Error("Expected out-of-bounds positions to be unwalkable")
	}
}

func TestWorldHasWalkableGround(t *testing.T) {
	w := NewWorld(40, 20, 7, nil)

	walkable := 0
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if w.Walkable(x, y) {
				walkable++
			}
		}
	}
	if walkable == 0 {
		t.Fatal("Expected generated world to contain walkable ground")
	}
}

func TestWorldDeterministicForSeed(t *testing.T) {
	a := NewWorld(30, 15, 42, nil)
	b := NewWorld(30, 15, 42, nil)

	for y := 0; y < 15; y++ {
		for x := 0; x < 30; x++ {
			if a.Walkable(x, y) != b.Walkable(x, y) {
				t.Fatalf("Worlds with equal seeds diverge at (%d, %d)", x, y)
			}
		}
	}
}

func TestWorldDrawFillsTerrainLayer(t *testing.T) {
	var buf bytes.Buffer
	fc := render.NewFrameController(&buf, 30, 15, 0, nil)

	w := NewWorld(30, 15, 7, nil)
	w.Draw(fc)

	changed, rendered := fc.Render()
	if !rendered {
		t.Fatal("Expected render to proceed")
	}
	if changed != 30*15 {
		t.Errorf("Expected every terrain cell in the first frame, got %d", changed)
	}
}

func TestNearestWalkable(t *testing.T) {
	w := NewWorld(40, 20, 7, nil)

	x, y := nearestWalkable(w, 20, 10)
	if !w.Walkable(x, y) {
		t.Errorf("Expected walkable result, got (%d, %d)", x, y)
	}

	// Out-of-range starting points clamp before scanning
	x, y = nearestWalkable(w, -50, 500)
	if !w.Walkable(x, y) {
		t.Errorf("Expected walkable result from clamped start, got (%d, %d)", x, y)
	}
}

func TestPlayerMoveRespectsTerrain(t *testing.T) {
	w := NewWorld(40, 20, 7, nil)
	px, py := nearestWalkable(w, 20, 10)
	p := &Player{X: px, Y: py}

	moved := p.Move(1, 0, w)
	if moved {
		if !w.Walkable(p.X, p.Y) {
			t.Error("Player moved onto unwalkable ground")
		}
		if p.X != px+1 || p.Y != py {
			t.Errorf("Unexpected position (%d, %d)", p.X, p.Y)
		}
	} else {
		if p.X != px || p.Y != py {
			t.Error("Blocked move must leave the player in place")
		}
	}
}

// Guards the pacing wiring end to end: a burst of renders inside the frame
// interval must be shed, not emitted.
func TestFramePacingUnderBurst(t *testing.T) {
	var buf bytes.Buffer
	fc := render.NewFrameController(&buf, 10, 5, time.Hour, nil)

	fc.DrawGlyph(0, 0, 'A', "", 1)
	if _, rendered := fc.Render(); !rendered {
		t.Fatal("Expected first render to proceed")
	}

	for i := 0; i < 10; i++ {
		fc.DrawGlyph(0, 0, 'A', "", 1)
		if _, rendered := fc.Render(); rendered {
			t.Fatal("Expected burst ticks to be skipped")
		}
	}
	if fc.Stats().Skipped != 10 {
		t.Errorf("Expected 10 skipped ticks, got %d", fc.Stats().Skipped)
	}
}
