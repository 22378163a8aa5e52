package terminal

import (
	"unicode/utf8"
)

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd

	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
)

// KeyEvent is one decoded keypress
type KeyEvent struct {
	Key  Key
	Rune rune
}

// decodeKeys parses raw input bytes into key events. Unrecognized escape
// sequences are swallowed whole so their tail bytes don't leak through as
// spurious rune events.
func decodeKeys(buf []byte) []KeyEvent {
	var events []KeyEvent

	for i := 0; i < len(buf); {
		b := buf[i]

		switch {
		case b == 0x1b:
			ev, n := decodeEscape(buf[i:])
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			i += n

		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: KeyEnter})
			i++

		case b == '\t':
			events = append(events, KeyEvent{Key: KeyTab})
			i++

		case b == 0x7f || b == 0x08:
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++

		case b == ' ':
			events = append(events, KeyEvent{Key: KeySpace})
			i++

		case b == 0x03:
			events = append(events, KeyEvent{Key: KeyCtrlC})
			i++

		case b == 0x04:
			events = append(events, KeyEvent{Key: KeyCtrlD})
			i++

		case b == 0x0c:
			events = append(events, KeyEvent{Key: KeyCtrlL})
			i++

		case b < 0x20:
			// Other control bytes are ignored
			i++

		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size == 1 {
				i++
				continue
			}
			events = append(events, KeyEvent{Key: KeyRune, Rune: r})
			i += size
		}
	}

	return events
}

// decodeEscape parses one escape sequence starting at buf[0] == ESC.
// Returns the event (KeyNone if the sequence is not mapped) and the number
// of bytes consumed.
func decodeEscape(buf []byte) (KeyEvent, int) {
	if len(buf) == 1 {
		return KeyEvent{Key: KeyEscape}, 1
	}

	if buf[1] != '[' && buf[1] != 'O' {
		// ESC followed by a non-CSI byte: treat as a bare escape and let
		// the next byte be decoded on its own
		return KeyEvent{Key: KeyEscape}, 1
	}

	if len(buf) < 3 {
		return KeyEvent{Key: KeyEscape}, len(buf)
	}

	switch buf[2] {
	case 'A':
		return KeyEvent{Key: KeyUp}, 3
	case 'B':
		return KeyEvent{Key: KeyDown}, 3
	case 'C':
		return KeyEvent{Key: KeyRight}, 3
	case 'D':
		return KeyEvent{Key: KeyLeft}, 3
	case 'H':
		return KeyEvent{Key: KeyHome}, 3
	case 'F':
		return KeyEvent{Key: KeyEnd}, 3
	}

	// Unknown CSI sequence: consume through its final byte
	n := 2
	for n < len(buf) {
		b := buf[n]
		n++
		if b >= 0x40 && b <= 0x7e {
			break
		}
	}
	return KeyEvent{Key: KeyNone}, n
}
