package render

import (
	"bufio"
	"io"

	"github.com/rfenner/gridfire/terminal"
)

// Emitter converts an ordered diff into terminal writes with minimal escape
// overhead. Horizontally adjacent changes sharing a style token coalesce
// into runs; each run costs one cursor position, one style token, the
// concatenated glyphs, and one reset.
type Emitter struct {
	w          *bufio.Writer
	syncCursor bool
}

// NewEmitter wraps the terminal output stream
func NewEmitter(out io.Writer) *Emitter {
	return &Emitter{
		w:          bufio.NewWriterSize(out, 131072), // 128KB buffer
		syncCursor: true,
	}
}

// SetCursorBracketing controls whether a cursor-hide sequence precedes each
// frame that has at least one change. The terminal session shows the cursor
// again on teardown; re-hiding per frame guards against stray show sequences
// from other writers
func (e *Emitter) SetCursorBracketing(on bool) {
	e.syncCursor = on
}

// Emit writes the diff to the terminal and returns the changed-cell count.
// An empty diff emits nothing at all: no cursor movement, no escape
// sequences, no flush.
func (e *Emitter) Emit(changes []Change) int {
	if len(changes) == 0 {
		return 0
	}

	w := e.w

	// Frame-level bracketing, not per-run
	if e.syncCursor {
		w.Write(terminal.CursorHide)
	}

	i := 0
	for i < len(changes) {
		// Extend the run while the next change is column-adjacent on the
		// same row with an identical style token
		j := i + 1
		for j < len(changes) &&
			changes[j].Y == changes[i].Y &&
			changes[j].X == changes[j-1].X+1 &&
			changes[j].Cell.Style == changes[i].Cell.Style {
			j++
		}

		terminal.WriteCursorPos(w, changes[i].X, changes[i].Y)

		if style := changes[i].Cell.Style; style != "" {
			w.WriteString(style)
		}

		for k := i; k < j; k++ {
			g := changes[k].Cell.Glyph
			if g == 0 {
				g = ' '
			}
			if g < 0x80 {
				w.WriteByte(byte(g))
			} else {
				w.WriteRune(g)
			}
		}

		w.Write(terminal.SGRReset)

		i = j
	}

	w.Flush()
	return len(changes)
}
