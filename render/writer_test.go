package render

import (
	"testing"
)

func TestDrawSpriteLegacyRows(t *testing.T) {
	g := NewGrid(20, 10)
	w := NewWriter(g)

	fg := "\x1b[38;2;10;20;30m"
	s := SpriteFromRows([]string{
		fg + "██",
		" " + fg + "█",
	})

	w.DrawSprite(2, 3, s, 5)

	checks := []struct {
		x, y  int
		glyph rune
	}{
		{2, 3, '█'},
		{3, 3, '█'},
		{3, 4, '█'},
	}
	for _, c := range checks {
		cell, ok := g.Read(c.x, c.y)
		if !ok {
			t.Errorf("Expected cell at (%d, %d)", c.x, c.y)
			continue
		}
		if cell.Glyph != c.glyph {
			t.Errorf("Expected %q at (%d, %d), got %q", c.glyph, c.x, c.y, cell.Glyph)
		}
		if cell.Style != fg {
			t.Errorf("Expected style %q at (%d, %d), got %q", fg, c.x, c.y, cell.Style)
		}
		if cell.Z != 5 {
			t.Errorf("Expected z 5 at (%d, %d), got %d", c.x, c.y, cell.Z)
		}
	}

	// The space in row 1 must not produce a cell
	if _, ok := g.Read(2, 4); ok {
		t.Error("Expected no cell where the sprite row had a space")
	}
}

func TestDrawSpriteCellRecords(t *testing.T) {
	g := NewGrid(20, 10)
	w := NewWriter(g)

	s := SpriteFromCells([]SpriteCell{
		{DX: 0, DY: 0, Glyph: '▀', Style: "\x1b[38;2;1;1;1m"},
		{DX: 1, DY: 1, Glyph: '▄', Style: ""},
		{Glyph: 0}, // malformed record, skipped
	})

	w.DrawSprite(5, 5, s, 2)

	if cell, ok := g.Read(5, 5); !ok || cell.Glyph != '▀' {
		t.Errorf("Expected '▀' at (5, 5), got %v (ok=%v)", cell.Glyph, ok)
	}
	if cell, ok := g.Read(6, 6); !ok || cell.Glyph != '▄' {
		t.Errorf("Expected '▄' at (6, 6), got %v (ok=%v)", cell.Glyph, ok)
	}
	if g.Stats().Occupied != 2 {
		t.Errorf("Expected exactly 2 cells, got %d", g.Stats().Occupied)
	}
}

func TestDrawSpriteTransparencySkip(t *testing.T) {
	g := NewGrid(20, 10)
	w := NewWriter(g)

	transparent := "\x1b[48;2;2;2;2m"

	s := SpriteFromCells([]SpriteCell{
		{DX: 0, DY: 0, Glyph: '█', Style: transparent},
		{DX: 1, DY: 0, Glyph: '█', Style: "\x1b[38;2;9;9;9m"},
	})
	w.DrawSprite(0, 0, s, 1)

	if _, ok := g.Read(0, 0); ok {
		t.Error("Expected transparent cell record to produce no write")
	}
	if _, ok := g.Read(1, 0); !ok {
		t.Error("Expected opaque cell record to produce a write")
	}

	// Same rule for the legacy encoding
	g.Clear()
	w.DrawSprite(0, 0, SpriteFromRows([]string{transparent + "█"}), 1)
	if g.Stats().Occupied != 0 {
		t.Error("Expected transparent legacy pixel to produce no write")
	}
}

func TestDrawSpriteNil(t *testing.T) {
	g := NewGrid(5, 5)
	w := NewWriter(g)

	w.DrawSprite(0, 0, nil, 0)

	if g.Stats().Occupied != 0 {
		t.Error("Expected nil sprite to be a no-op")
	}
}

func TestDrawTextDropsPastWidth(t *testing.T) {
	g := NewGrid(5, 3)
	w := NewWriter(g)

	w.DrawText(3, 1, "hello", "", 0)

	if g.Stats().Occupied != 2 {
		t.Errorf("Expected 2 cells (columns 3, 4), got %d", g.Stats().Occupied)
	}
	if cell, _ := g.Read(3, 1); cell.Glyph != 'h' {
		t.Errorf("Expected 'h' at (3, 1), got %q", cell.Glyph)
	}
	if cell, _ := g.Read(4, 1); cell.Glyph != 'e' {
		t.Errorf("Expected 'e' at (4, 1), got %q", cell.Glyph)
	}
}

func TestClearRect(t *testing.T) {
	g := NewGrid(10, 10)
	w := NewWriter(g)

	// Higher-layer content the clear must not disturb
	w.DrawGlyph(2, 2, 'X', "", 9)

	w.ClearRect(1, 1, 3, 3, 4)

	if cell, _ := g.Read(2, 2); cell.Glyph != 'X' {
		t.Errorf("Expected higher layer to survive clear, got %q", cell.Glyph)
	}

	cell, ok := g.Read(1, 1)
	if !ok {
		t.Fatal("Expected clear cell at (1, 1)")
	}
	if cell.Glyph != ' ' || cell.Style != "" || cell.Z != 4 {
		t.Errorf("Unexpected clear cell: %+v", cell)
	}

	if g.Stats().Occupied != 9 {
		t.Errorf("Expected 9 occupied cells, got %d", g.Stats().Occupied)
	}
}
