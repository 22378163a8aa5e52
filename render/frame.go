package render

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/rfenner/gridfire/status"
)

// Clock abstracts time for frame pacing so tests can inject a virtual clock
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FrameStats reports frame pacing and occupancy diagnostics
type FrameStats struct {
	Frames      int64
	Skipped     int64
	LastChanged int
	Occupied    int
	Capacity    int
	Occupancy   float64
}

// FrameController owns the front/back grid pair and drives the per-tick
// diff → emit → swap → clear cycle. It is the only component permitted to
// swap or resize the grids; collaborators only issue draw calls.
type FrameController struct {
	front  *Grid
	back   *Grid
	writer *Writer

	emitter *Emitter
	clock   Clock

	minInterval time.Duration
	lastRender  time.Time
	hasRendered bool
	released    bool

	frames      int64
	skipped     int64
	lastChanged int

	statFrames   *atomic.Int64
	statSkipped  *atomic.Int64
	statChanged  *atomic.Int64
	statOccupied *atomic.Int64
}

// NewFrameController creates a controller writing to out. minInterval is the
// frame-rate ceiling: ticks arriving sooner than this after the previous
// render are skipped. A nil clock uses the system clock.
func NewFrameController(out io.Writer, width, height int, minInterval time.Duration, clock Clock) *FrameController {
	if clock == nil {
		clock = systemClock{}
	}
	fc := &FrameController{
		front:       NewGrid(width, height),
		back:        NewGrid(width, height),
		emitter:     NewEmitter(out),
		clock:       clock,
		minInterval: minInterval,
	}
	fc.writer = NewWriter(fc.front)
	return fc
}

// AttachStatus wires frame metrics into a registry. Pointers are cached once;
// the render loop writes atomics directly.
func (fc *FrameController) AttachStatus(reg *status.Registry) {
	fc.statFrames = reg.Ints.Get("render.frames")
	fc.statSkipped = reg.Ints.Get("render.skipped")
	fc.statChanged = reg.Ints.Get("render.changed")
	fc.statOccupied = reg.Ints.Get("render.occupied")
}

// DrawSprite writes a sprite into the front grid
func (fc *FrameController) DrawSprite(x, y int, s *SpriteData, z int) {
	if fc.released {
		return
	}
	fc.writer.DrawSprite(x, y, s, z)
}

// DrawText writes a text run into the front grid
func (fc *FrameController) DrawText(x, y int, text, style string, z int) {
	if fc.released {
		return
	}
	fc.writer.DrawText(x, y, text, style, z)
}

// DrawGlyph writes a single cell into the front grid
func (fc *FrameController) DrawGlyph(x, y int, glyph rune, style string, z int) {
	if fc.released {
		return
	}
	fc.writer.DrawGlyph(x, y, glyph, style, z)
}

// ClearRect punches a rectangle of background cells into the front grid
func (fc *FrameController) ClearRect(x, y, width, height, z int) {
	if fc.released {
		return
	}
	fc.writer.ClearRect(x, y, width, height, z)
}

// Render runs one tick: diff the front grid against the back, emit the
// changes, swap the buffer labels, and clear the new front. Returns the
// changed-cell count and whether a frame was actually rendered (false when
// the tick was skipped by pacing or the controller is stopped).
func (fc *FrameController) Render() (int, bool) {
	if fc.released {
		return 0, false
	}

	now := fc.clock.Now()
	if fc.hasRendered && fc.minInterval > 0 && now.Sub(fc.lastRender) < fc.minInterval {
		fc.skipped++
		if fc.statSkipped != nil {
			fc.statSkipped.Add(1)
		}
		return 0, false
	}

	changes := Diff(fc.front, fc.back)
	changed := fc.emitter.Emit(changes)

	// Swap labels, no data copy. The old front is now what the terminal
	// shows; the old back starts the next tick empty.
	fc.front, fc.back = fc.back, fc.front
	fc.front.Clear()
	fc.writer.grid = fc.front

	fc.lastRender = now
	fc.hasRendered = true
	fc.frames++
	fc.lastChanged = changed

	if fc.statFrames != nil {
		fc.statFrames.Add(1)
		fc.statChanged.Store(int64(changed))
		fc.statOccupied.Store(int64(len(fc.back.cells)))
	}

	return changed, true
}

// Resize discards both grids and allocates fresh ones at the new dimensions.
// Pacing bookkeeping is reset so the tick that follows a resize is never
// skipped; diffing against the empty back grid yields a full redraw.
func (fc *FrameController) Resize(width, height int) {
	if fc.released {
		return
	}
	fc.front = NewGrid(width, height)
	fc.back = NewGrid(width, height)
	fc.writer.grid = fc.front
	fc.hasRendered = false
	fc.lastRender = time.Time{}
}

// Stop releases both grids. Idempotent; draw and render calls after Stop are
// no-ops so late-arriving calls from async collaborators cannot fault.
func (fc *FrameController) Stop() {
	if fc.released {
		return
	}
	fc.released = true
	fc.front = nil
	fc.back = nil
}

// Stats returns pacing counters and the occupancy of the grid currently on
// the terminal
func (fc *FrameController) Stats() FrameStats {
	st := FrameStats{
		Frames:      fc.frames,
		Skipped:     fc.skipped,
		LastChanged: fc.lastChanged,
	}
	if fc.back != nil {
		gs := fc.back.Stats()
		st.Occupied = gs.Occupied
		st.Capacity = gs.Capacity
		st.Occupancy = gs.Occupancy
	}
	return st
}
