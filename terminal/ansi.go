package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	CSI      = []byte("\x1b[")
	SGRReset = []byte("\x1b[0m")

	ClearScreen = []byte("\x1b[2J\x1b[H")
	CursorHome  = []byte("\x1b[H")
	RIS         = []byte("\x1bc") // Reset to Initial State (emergency)

	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	AltScreenEnter = []byte("\x1b[?1049h")
	AltScreenExit  = []byte("\x1b[?1049l")

	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll
	// when writing to the bottom-right corner
	AutoWrapOn  = []byte("\x1b[?7h")
	AutoWrapOff = []byte("\x1b[?7l")
)

// WriteInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a cursor positioning sequence
// Input is 0-indexed, the emitted sequence is 1-based row;col
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(CSI)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}
