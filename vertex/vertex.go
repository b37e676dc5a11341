package vertex

import "github.com/katalvlaran/masyu/puzzle"

// Vertex is a read-only lens over (state, x, y). All methods are derived on
// the fly from the underlying PuzzleState; nothing here is cached.
type Vertex struct {
	State *puzzle.PuzzleState
	X, Y  int
}

// New builds a Vertex lens at (x,y). The caller must ensure (x,y) is
// in-grid; callers that only have a Coord in hand can use New(state, c.X, c.Y).
func New(state *puzzle.PuzzleState, x, y int) Vertex {
	return Vertex{State: state, X: x, Y: y}
}

// Coord returns this vertex's coordinate.
func (v Vertex) Coord() Coord { return Coord{X: v.X, Y: v.Y} }

// Type returns the tile kind at this vertex.
func (v Vertex) Type() puzzle.TileType {
	t, _ := v.State.GetTile(v.X, v.Y)

	return t
}

// LineUp returns the state of the vertical edge above this vertex and
// whether that edge exists.
func (v Vertex) LineUp() (puzzle.LineState, bool) { return v.State.GetVLine(v.X, v.Y-1) }

// LineDown returns the state of the vertical edge below this vertex and
// whether that edge exists.
func (v Vertex) LineDown() (puzzle.LineState, bool) { return v.State.GetVLine(v.X, v.Y) }

// LineLeft returns the state of the horizontal edge left of this vertex and
// whether that edge exists.
func (v Vertex) LineLeft() (puzzle.LineState, bool) { return v.State.GetHLine(v.X-1, v.Y) }

// LineRight returns the state of the horizontal edge right of this vertex
// and whether that edge exists.
func (v Vertex) LineRight() (puzzle.LineState, bool) { return v.State.GetHLine(v.X, v.Y) }

// MayPlaceLineUp reports whether the up edge exists and is not Empty.
func (v Vertex) MayPlaceLineUp() bool { return mayPlace(v.LineUp()) }

// MayPlaceLineDown reports whether the down edge exists and is not Empty.
func (v Vertex) MayPlaceLineDown() bool { return mayPlace(v.LineDown()) }

// MayPlaceLineLeft reports whether the left edge exists and is not Empty.
func (v Vertex) MayPlaceLineLeft() bool { return mayPlace(v.LineLeft()) }

// MayPlaceLineRight reports whether the right edge exists and is not Empty.
func (v Vertex) MayPlaceLineRight() bool { return mayPlace(v.LineRight()) }

func mayPlace(s puzzle.LineState, exists bool) bool {
	return exists && s != puzzle.Empty
}

// CountLines returns the number of incident edges currently Line.
func (v Vertex) CountLines() int {
	n := 0
	if s, ok := v.LineUp(); ok && s == puzzle.Line {
		n++
	}
	if s, ok := v.LineDown(); ok && s == puzzle.Line {
		n++
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.Line {
		n++
	}
	if s, ok := v.LineRight(); ok && s == puzzle.Line {
		n++
	}

	return n
}

// CountAny returns the number of incident edges still undecided.
func (v Vertex) CountAny() int {
	n := 0
	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		n++
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		n++
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		n++
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		n++
	}

	return n
}

// IsFilled reports whether every incident edge is decided (no CountAny left).
func (v Vertex) IsFilled() bool { return v.CountAny() == 0 }

// IsCorner reports whether exactly two incident edges are Line and they are
// perpendicular (one horizontal, one vertical).
func (v Vertex) IsCorner() bool {
	if v.CountLines() != 2 {
		return false
	}
	horiz := v.isLine(v.LineLeft()) || v.isLine(v.LineRight())
	vert := v.isLine(v.LineUp()) || v.isLine(v.LineDown())

	return horiz && vert
}

// IsStraight reports whether exactly two incident edges are Line and they
// are collinear (both horizontal or both vertical).
func (v Vertex) IsStraight() bool {
	if v.CountLines() != 2 {
		return false
	}
	bothHoriz := v.isLine(v.LineLeft()) && v.isLine(v.LineRight())
	bothVert := v.isLine(v.LineUp()) && v.isLine(v.LineDown())

	return bothHoriz || bothVert
}

func (v Vertex) isLine(s puzzle.LineState, ok bool) bool { return ok && s == puzzle.Line }

// MayBeCorner reports whether this vertex could still end up a corner: it
// is not already a definitive straight, and at least one horizontal and at
// least one vertical incident edge can still become Line.
func (v Vertex) MayBeCorner() bool {
	if v.IsStraight() {
		return false
	}
	horizPossible := v.MayPlaceLineLeft() || v.MayPlaceLineRight()
	vertPossible := v.MayPlaceLineUp() || v.MayPlaceLineDown()

	return horizPossible && vertPossible
}

// MayBeStraight reports whether this vertex could still end up straight: it
// is not already a definitive corner, and either both horizontals or both
// verticals can still become Line.
func (v Vertex) MayBeStraight() bool {
	if v.IsCorner() {
		return false
	}
	bothHoriz := v.MayPlaceLineLeft() && v.MayPlaceLineRight()
	bothVert := v.MayPlaceLineUp() && v.MayPlaceLineDown()

	return bothHoriz || bothVert
}

// AdjacentVertexUp returns the vertex lens above this one, or false if
// off-grid.
func (v Vertex) AdjacentVertexUp() (Vertex, bool) { return v.adjacent(0, -1) }

// AdjacentVertexDown returns the vertex lens below this one, or false if
// off-grid.
func (v Vertex) AdjacentVertexDown() (Vertex, bool) { return v.adjacent(0, 1) }

// AdjacentVertexLeft returns the vertex lens left of this one, or false if
// off-grid.
func (v Vertex) AdjacentVertexLeft() (Vertex, bool) { return v.adjacent(-1, 0) }

// AdjacentVertexRight returns the vertex lens right of this one, or false if
// off-grid.
func (v Vertex) AdjacentVertexRight() (Vertex, bool) { return v.adjacent(1, 0) }

func (v Vertex) adjacent(dx, dy int) (Vertex, bool) {
	nx, ny := v.X+dx, v.Y+dy
	if _, ok := v.State.GetTile(nx, ny); !ok {
		return Vertex{}, false
	}

	return Vertex{State: v.State, X: nx, Y: ny}, true
}

// AdjacentVertices returns the up/down/left/right neighbor lenses that are
// in-grid, in that order.
func (v Vertex) AdjacentVertices() []Vertex {
	out := make([]Vertex, 0, 4)
	if n, ok := v.AdjacentVertexUp(); ok {
		out = append(out, n)
	}
	if n, ok := v.AdjacentVertexDown(); ok {
		out = append(out, n)
	}
	if n, ok := v.AdjacentVertexLeft(); ok {
		out = append(out, n)
	}
	if n, ok := v.AdjacentVertexRight(); ok {
		out = append(out, n)
	}

	return out
}
