package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fgGreen = "\x1b[38;2;0;200;0m"
	bgBlue  = "\x1b[48;2;0;0;180m"
)

func TestParseRowPlainBlocks(t *testing.T) {
	cells := ParseRow("██")

	require.Len(t, cells, 2)
	assert.Equal(t, '█', cells[0].Glyph)
	assert.Equal(t, "", cells[0].Style)
	assert.Equal(t, 0, cells[0].Offset)
	assert.Equal(t, 1, cells[1].Offset)
}

func TestParseRowStyleAppliesToFollowingGlyphs(t *testing.T) {
	cells := ParseRow(fgGreen + "██")

	require.Len(t, cells, 2)
	for _, c := range cells {
		assert.Equal(t, fgGreen, c.Style)
	}
}

func TestParseRowSpacesAdvanceColumn(t *testing.T) {
	cells := ParseRow("  " + fgGreen + "█ █")

	require.Len(t, cells, 2)
	assert.Equal(t, 2, cells[0].Offset)
	assert.Equal(t, 4, cells[1].Offset)
	// Spaces produce no cells but do not reset the style
	assert.Equal(t, fgGreen, cells[1].Style)
}

func TestParseRowConsecutiveSequencesMerge(t *testing.T) {
	// A fg+bg pair with no glyph between them forms one token
	cells := ParseRow(fgGreen + bgBlue + "█")

	require.Len(t, cells, 1)
	assert.Equal(t, fgGreen+bgBlue, cells[0].Style)
}

func TestParseRowNewSequenceReplacesStyle(t *testing.T) {
	red := "\x1b[38;2;200;0;0m"
	cells := ParseRow(fgGreen + "█" + red + "█")

	require.Len(t, cells, 2)
	assert.Equal(t, fgGreen, cells[0].Style)
	assert.Equal(t, red, cells[1].Style)
}

func TestParseRowUnterminatedEscape(t *testing.T) {
	// No terminator before end of row: the remainder is style data and the
	// row stops producing glyphs
	cells := ParseRow("█\x1b[38;2;1;2;3██")

	require.Len(t, cells, 1)
	assert.Equal(t, '█', cells[0].Glyph)
}

func TestParseRowDisallowedGlyphsIgnored(t *testing.T) {
	cells := ParseRow("a█b")

	require.Len(t, cells, 1)
	assert.Equal(t, '█', cells[0].Glyph)
	// Ignored characters do not advance the column
	assert.Equal(t, 0, cells[0].Offset)
}

func TestParseRowEmpty(t *testing.T) {
	assert.Empty(t, ParseRow(""))
	assert.Empty(t, ParseRow("   "))
	assert.Empty(t, ParseRow(fgGreen))
}

func TestParseRowStatelessAcrossCalls(t *testing.T) {
	ParseRow(fgGreen + "█")
	cells := ParseRow("█")

	require.Len(t, cells, 1)
	assert.Equal(t, "", cells[0].Style, "style must not leak between rows")
}

func TestTransparent(t *testing.T) {
	cases := []struct {
		name  string
		style string
		want  bool
	}{
		{"empty", "", false},
		{"fg only", fgGreen, false},
		{"bright bg only", bgBlue, false},
		{"near-black bg only", "\x1b[48;2;4;4;8m", true},
		{"near-black bg with fg", fgGreen + "\x1b[48;2;4;4;8m", false},
		{"palette black bg", "\x1b[48;5;0m", true},
		{"palette gray ramp bg", "\x1b[48;5;233m", true},
		{"palette bright bg", "\x1b[48;5;196m", false},
		{"one bright channel", "\x1b[48;2;4;200;8m", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Transparent(tc.style))
		})
	}
}
