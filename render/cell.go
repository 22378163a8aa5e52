package render

// Cell is the smallest renderable unit: one glyph, one opaque style token,
// and the z layer it was written at. Identity is positional; a Cell exists
// only as the value stored at a coordinate in a Grid.
//
// The style token is zero or more verbatim escape sequences emitted
// immediately before the glyph. Tokens compare by string identity, never by
// color semantics.
type Cell struct {
	Glyph rune
	Style string
	Z     int
}

// coord packs an (x, y) grid coordinate into a single map key.
// Integer keys keep lookups allocation-free; string keys would allocate on
// every probe.
type coord uint64

func packCoord(x, y int) coord {
	return coord(uint32(y))<<32 | coord(uint32(x))
}

func (c coord) unpack() (x, y int) {
	return int(uint32(c)), int(uint32(c >> 32))
}
