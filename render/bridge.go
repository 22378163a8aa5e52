package render

import "github.com/gdamore/tcell/v2"

// StyleToken converts a tcell.Style into the opaque token format the grid
// carries. Game collaborators author entity visuals with tcell's style API;
// the render core only ever sees the resulting escape string.
func StyleToken(st tcell.Style) string {
	fg, bg, _ := st.Decompose()

	tok := ""
	if c, ok := colorRGB(fg); ok {
		tok += FgToken(c)
	}
	if c, ok := colorRGB(bg); ok {
		tok += BgToken(c)
	}
	return tok
}

// TcellToRGB converts a tcell.Color to RGB, with ok false for ColorDefault
// and other non-color values
func TcellToRGB(c tcell.Color) (RGB, bool) {
	return colorRGB(c)
}

// RGBToTcell converts RGB to a tcell.Color
func RGBToTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func colorRGB(c tcell.Color) (RGB, bool) {
	if !c.Valid() || c == tcell.ColorDefault {
		return RGB{}, false
	}
	r, g, b := c.RGB()
	if r < 0 {
		return RGB{}, false
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, true
}
