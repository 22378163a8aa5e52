package render

// Grid is a sparse per-tick snapshot of styled cells. Only occupied
// coordinates are stored; absence means "unwritten this tick". Writes are
// composited by z index: a write lands iff the coordinate is empty or the
// incoming z is >= the occupant's z. Equal z overwrites (last writer wins),
// so draw calls need not arrive in layer order.
type Grid struct {
	width  int
	height int
	cells  map[coord]Cell
}

// GridStats reports occupancy for diagnostics
type GridStats struct {
	Occupied  int
	Capacity  int
	Occupancy float64
}

// NewGrid creates an empty grid with the given bounds
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make(map[coord]Cell, 256),
	}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Write composites a cell at (x, y). Out-of-bounds writes are dropped
// silently; entities routinely sit partially off-screen during movement
func (g *Grid) Write(x, y int, glyph rune, style string, z int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}

	key := packCoord(x, y)
	if existing, ok := g.cells[key]; ok {
		if z < existing.Z {
			return
		}
		if existing.Glyph == glyph && existing.Style == style && existing.Z == z {
			return
		}
	}
	g.cells[key] = Cell{Glyph: glyph, Style: style, Z: z}
}

// Read returns the cell at (x, y), with ok reporting occupancy
func (g *Grid) Read(x, y int) (Cell, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{}, false
	}
	c, ok := g.cells[packCoord(x, y)]
	return c, ok
}

// Entries calls fn for every occupied cell. Iteration order is undefined;
// the diff engine orders its own output. Returning false stops iteration.
func (g *Grid) Entries(fn func(x, y int, c Cell) bool) {
	for key, cell := range g.cells {
		x, y := key.unpack()
		if !fn(x, y, cell) {
			return
		}
	}
}

// Clear empties the occupied-coordinate map. Cost is O(occupied), not
// O(width*height); Go's map clear keeps the allocated buckets
func (g *Grid) Clear() {
	clear(g.cells)
}

// Stats returns occupancy diagnostics
func (g *Grid) Stats() GridStats {
	capacity := g.width * g.height
	st := GridStats{
		Occupied: len(g.cells),
		Capacity: capacity,
	}
	if capacity > 0 {
		st.Occupancy = float64(st.Occupied) / float64(capacity)
	}
	return st
}
