package sprite

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rfenner/gridfire/render"
)

// Sheet maps sprite names to draw-ready sprite data
type Sheet map[string]*render.SpriteData

type sheetFile struct {
	Sprites map[string]spriteDef `yaml:"sprites"`
}

type spriteDef struct {
	Rows  []string  `yaml:"rows"`
	Cells []cellDef `yaml:"cells"`
}

type cellDef struct {
	DX    int     `yaml:"dx"`
	DY    int     `yaml:"dy"`
	Glyph string  `yaml:"glyph"`
	Fg    []uint8 `yaml:"fg"`
	Bg    []uint8 `yaml:"bg"`
}

// Load parses a YAML sprite sheet. A sprite defines either raw styled-text
// rows (legacy encoding, escapes embedded in the strings) or explicit cell
// records with fg/bg color triples. Malformed cell records are skipped so a
// partially broken sheet still loads; a sprite with neither encoding is
// dropped entirely.
func Load(r io.Reader) (Sheet, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet: %w", err)
	}

	var f sheetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet: %w", err)
	}

	sheet := make(Sheet, len(f.Sprites))
	for name, def := range f.Sprites {
		switch {
		case len(def.Cells) > 0:
			cells := make([]render.SpriteCell, 0, len(def.Cells))
			for _, c := range def.Cells {
				glyph, ok := singleRune(c.Glyph)
				if !ok {
					continue
				}
				cells = append(cells, render.SpriteCell{
					DX:    c.DX,
					DY:    c.DY,
					Glyph: glyph,
					Style: styleFor(c),
				})
			}
			if len(cells) > 0 {
				sheet[name] = render.SpriteFromCells(cells)
			}

		case len(def.Rows) > 0:
			sheet[name] = render.SpriteFromRows(def.Rows)
		}
	}

	return sheet, nil
}

// singleRune validates that s is exactly one rune
func singleRune(s string) (rune, bool) {
	var glyph rune
	n := 0
	for _, r := range s {
		glyph = r
		n++
	}
	if n != 1 {
		return 0, false
	}
	return glyph, true
}

func styleFor(c cellDef) string {
	tok := ""
	if len(c.Fg) == 3 {
		tok += render.FgToken(render.RGB{R: c.Fg[0], G: c.Fg[1], B: c.Fg[2]})
	}
	if len(c.Bg) == 3 {
		tok += render.BgToken(render.RGB{R: c.Bg[0], G: c.Bg[1], B: c.Bg[2]})
	}
	return tok
}
