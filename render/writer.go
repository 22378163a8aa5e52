package render

// Writer decomposes draw calls into grid writes. It is bound to a single
// grid (the frame's front buffer) for the duration of a tick and never reads
// the back buffer.
type Writer struct {
	grid *Grid
}

// NewWriter binds a writer to a grid
func NewWriter(g *Grid) *Writer {
	return &Writer{grid: g}
}

// DrawSprite writes a sprite with its top-left at (x, y). Legacy rows go
// through the style parser; cell records are written directly. Transparent
// pixels and malformed records are skipped so partial sprites still render.
func (w *Writer) DrawSprite(x, y int, s *SpriteData, z int) {
	if s == nil {
		return
	}

	switch s.format {
	case formatRows:
		for dy, row := range s.rows {
			for _, pc := range ParseRow(row) {
				if Transparent(pc.Style) {
					continue
				}
				w.grid.Write(x+pc.Offset, y+dy, pc.Glyph, pc.Style, z)
			}
		}

	case formatCells:
		for _, c := range s.cells {
			if c.Glyph == 0 {
				continue
			}
			if Transparent(c.Style) {
				continue
			}
			w.grid.Write(x+c.DX, y+c.DY, c.Glyph, c.Style, z)
		}
	}
}

// DrawText writes one cell per rune starting at (x, y). Characters past the
// grid width are dropped silently at the grid boundary.
func (w *Writer) DrawText(x, y int, text, style string, z int) {
	col := x
	for _, r := range text {
		w.grid.Write(col, y, r, style, z)
		col++
	}
}

// DrawGlyph writes a single cell
func (w *Writer) DrawGlyph(x, y int, glyph rune, style string, z int) {
	w.grid.Write(x, y, glyph, style, z)
}

// ClearRect writes a space glyph with empty style at the given z across the
// rectangle. Used to punch a background layer beneath movable entities
// without disturbing higher layers.
func (w *Writer) ClearRect(x, y, width, height, z int) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			w.grid.Write(x+dx, y+dy, ' ', "", z)
		}
	}
}
