package render

import "fmt"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// FgToken builds a direct-color foreground style token
func FgToken(c RGB) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// BgToken builds a direct-color background style token
func BgToken(c RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// FgBgToken builds a combined foreground+background style token
func FgBgToken(fg, bg RGB) string {
	return FgToken(fg) + BgToken(bg)
}
