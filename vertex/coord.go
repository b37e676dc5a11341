package vertex

// Coord names a vertex (equivalently, a grid cell) by its integer grid
// position. It has structural equality and is safe to use directly as a map
// key, the way the propagation engine's dirty set and the search driver's
// guess-candidate dedup both require.
type Coord struct {
	X, Y int
}

// CoordSet is a set of Coord values. nil and an empty CoordSet behave
// identically when read (lookup, len, range); Add and Union write to the
// map, so callers should use NewCoordSet to allocate.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a CoordSet from the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}

	return s
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

// Union merges other into s in place.
func (s CoordSet) Union(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}
