package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmitEmptyDiffSilent(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)

	if n := e.Emit(nil); n != 0 {
		t.Errorf("Expected 0 changed cells, got %d", n)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected zero bytes for an empty diff, got %q", buf.String())
	}
}

func TestEmitRunBatching(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetCursorBracketing(false)

	styleA := "\x1b[38;2;1;1;1m"
	styleB := "\x1b[38;2;2;2;2m"

	// Spec scenario: columns 5, 6, 7 share a style; column 9 differs.
	// Exactly two runs must be emitted.
	changes := []Change{
		{X: 5, Y: 2, Cell: Cell{Glyph: 'a', Style: styleA}},
		{X: 6, Y: 2, Cell: Cell{Glyph: 'b', Style: styleA}},
		{X: 7, Y: 2, Cell: Cell{Glyph: 'c', Style: styleA}},
		{X: 9, Y: 2, Cell: Cell{Glyph: 'd', Style: styleB}},
	}

	if n := e.Emit(changes); n != 4 {
		t.Errorf("Expected 4 changed cells, got %d", n)
	}

	out := buf.String()

	if got := strings.Count(out, "\x1b[3;"); got != 2 {
		t.Errorf("Expected 2 cursor positions on row 3, got %d in %q", got, out)
	}
	if !strings.Contains(out, "\x1b[3;6H"+styleA+"abc") {
		t.Errorf("Expected batched run for columns 5-7, got %q", out)
	}
	if !strings.Contains(out, "\x1b[3;10H"+styleB+"d") {
		t.Errorf("Expected separate run for column 9, got %q", out)
	}
	if got := strings.Count(out, "\x1b[0m"); got != 2 {
		t.Errorf("Expected one reset per run, got %d", got)
	}
}

func TestEmitRunBreaksOnGap(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetCursorBracketing(false)

	changes := []Change{
		{X: 0, Y: 0, Cell: Cell{Glyph: 'a'}},
		{X: 2, Y: 0, Cell: Cell{Glyph: 'b'}},
	}
	e.Emit(changes)

	out := buf.String()
	if got := strings.Count(out, "H"); got != 2 {
		t.Errorf("Expected 2 runs for non-adjacent columns, got %d in %q", got, out)
	}
}

func TestEmitRunBreaksOnRow(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetCursorBracketing(false)

	// Same style, adjacent x, different rows: two runs
	changes := []Change{
		{X: 3, Y: 0, Cell: Cell{Glyph: 'a'}},
		{X: 4, Y: 1, Cell: Cell{Glyph: 'b'}},
	}
	e.Emit(changes)

	out := buf.String()
	if !strings.Contains(out, "\x1b[1;4H") || !strings.Contains(out, "\x1b[2;5H") {
		t.Errorf("Expected one run per row, got %q", out)
	}
}

func TestEmitOneBasedAddressing(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetCursorBracketing(false)

	e.Emit([]Change{{X: 0, Y: 0, Cell: Cell{Glyph: 'x'}}})

	if !strings.HasPrefix(buf.String(), "\x1b[1;1H") {
		t.Errorf("Expected 1-based cursor addressing, got %q", buf.String())
	}
}

func TestEmitCursorBracketing(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)

	e.Emit([]Change{{X: 0, Y: 0, Cell: Cell{Glyph: 'x'}}})

	if !strings.HasPrefix(buf.String(), "\x1b[?25l") {
		t.Errorf("Expected frame-level cursor hide before first run, got %q", buf.String())
	}
	if got := strings.Count(buf.String(), "\x1b[?25l"); got != 1 {
		t.Errorf("Expected exactly one cursor hide per frame, got %d", got)
	}
}

func TestEmitZeroGlyphAsSpace(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	e.SetCursorBracketing(false)

	e.Emit([]Change{{X: 0, Y: 0, Cell: Cell{Glyph: 0}}})

	if !strings.Contains(buf.String(), " ") {
		t.Errorf("Expected zero glyph emitted as space, got %q", buf.String())
	}
}
