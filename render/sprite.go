package render

// SpriteCell is one pre-decomposed sprite pixel: a glyph and style token at
// an offset relative to the sprite's draw origin.
type SpriteCell struct {
	DX, DY int
	Glyph  rune
	Style  string
}

type spriteFormat uint8

const (
	formatRows spriteFormat = iota
	formatCells
)

// SpriteData is a draw-ready sprite in one of two encodings: legacy raw
// styled-text rows (parsed through ParseRow at draw time) or explicit cell
// records. The encoding is resolved once at construction, not re-inspected
// per draw call.
type SpriteData struct {
	format spriteFormat
	rows   []string
	cells  []SpriteCell
}

// SpriteFromRows builds a legacy-format sprite from raw styled-text rows
func SpriteFromRows(rows []string) *SpriteData {
	return &SpriteData{format: formatRows, rows: rows}
}

// SpriteFromCells builds a sprite from explicit cell records
func SpriteFromCells(cells []SpriteCell) *SpriteData {
	return &SpriteData{format: formatCells, cells: cells}
}
