package render

const esc = '\x1b'

// ParsedCell is one visible glyph extracted from a styled sprite row,
// with the column offset it occupies relative to the row's draw origin.
type ParsedCell struct {
	Glyph  rune
	Style  string
	Offset int
}

// ParseRow extracts (glyph, style, offset) triples from a raw styled-text
// sprite row. Escape sequences are accumulated verbatim as the current style
// token and apply to the glyphs that follow; spaces advance the column
// without producing a cell.
//
// Only glyphs in the Block Elements range are visible; anything else that is
// not a space or an escape is ignored, as defensive parsing against
// malformed assets. An unterminated escape consumes the remainder of the
// row, so that row simply stops producing glyphs.
//
// The parser is stateless across calls: every row starts with an empty
// style token.
func ParseRow(row string) []ParsedCell {
	var cells []ParsedCell

	runes := []rune(row)
	style := ""
	styleOpen := false // true while consuming back-to-back escape sequences
	col := 0

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == esc:
			seq, n, ok := scanEscape(runes[i:])
			if !ok {
				// No terminator before end of row; the remainder is style
				// data and this row emits nothing further
				return cells
			}
			if styleOpen {
				// Adjacent sequences merge into one token so fg+bg pairs
				// survive as a single style
				style += seq
			} else {
				style = seq
				styleOpen = true
			}
			i += n

		case r == ' ':
			col++
			styleOpen = false
			i++

		case visibleGlyph(r):
			cells = append(cells, ParsedCell{Glyph: r, Style: style, Offset: col})
			col++
			styleOpen = false
			i++

		default:
			// Not on the allow-list: dropped, column does not advance
			i++
		}
	}

	return cells
}

// scanEscape consumes one escape sequence starting at runes[0] == ESC.
// Returns the verbatim sequence, the rune count consumed, and whether a
// terminator was found.
func scanEscape(runes []rune) (string, int, bool) {
	if len(runes) < 2 {
		return "", 0, false
	}

	if runes[1] != '[' {
		// Two-character escape: the byte after ESC is the terminator
		return string(runes[:2]), 2, true
	}

	for j := 2; j < len(runes); j++ {
		if runes[j] >= 0x40 && runes[j] <= 0x7e {
			return string(runes[:j+1]), j + 1, true
		}
	}
	return "", 0, false
}

// visibleGlyph reports whether r is on the sprite glyph allow-list:
// the Unicode Block Elements range (solid and partial blocks)
func visibleGlyph(r rune) bool {
	return r >= 0x2580 && r <= 0x259f
}
