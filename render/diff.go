package render

import "sort"

// Change is one coordinate whose cell content differs between the front and
// back grids.
type Change struct {
	X, Y int
	Cell Cell
}

// Diff compares the front grid against the back grid and returns every
// coordinate whose glyph or style differs. Z differences alone are not a
// visible change. A coordinate occupied in back but absent in front is not
// reported: the diff only sees what was written this tick, so callers that
// need persistence must issue explicit clears.
//
// Cost is O(occupied-in-front). Changes are ordered by row then column;
// the emitter's run coalescing depends on that ordering.
func Diff(front, back *Grid) []Change {
	var changes []Change

	front.Entries(func(x, y int, cell Cell) bool {
		if prev, ok := back.Read(x, y); ok &&
			prev.Glyph == cell.Glyph && prev.Style == cell.Style {
			return true
		}
		changes = append(changes, Change{X: x, Y: y, Cell: cell})
		return true
	})

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Y != changes[j].Y {
			return changes[i].Y < changes[j].Y
		}
		return changes[i].X < changes[j].X
	})

	return changes
}
