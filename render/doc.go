// Package render implements the layered frame buffer and diff-based render
// engine: a sparse z-composited cell grid rebuilt every tick, reconciled
// against the previous tick's grid, and emitted to the terminal as
// row-batched styled runs.
//
// Data flows one direction per tick: collaborators issue draw calls through
// the FrameController, which routes them into the front grid; Render diffs
// front against back, the emitter writes the minimal byte stream, and the
// buffers swap for the next tick.
//
// The engine degrades rather than crashes: out-of-bounds writes, malformed
// sprite elements, and unterminated escape sequences are dropped locally. A
// missing glyph is a cosmetic defect, not a correctness failure.
package render
