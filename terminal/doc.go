// Package terminal provides low-level terminal access: raw mode, the
// alternate screen, ANSI sequence fragments for the render path, resize
// notification via SIGWINCH, and keypress decoding.
//
// The package assumes a terminal that accepts cursor positioning and
// direct-color SGR sequences; there is no capability negotiation beyond
// environment-based color mode detection.
package terminal
