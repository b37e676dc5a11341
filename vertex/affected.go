package vertex

import "github.com/katalvlaran/masyu/puzzle"

// AffectedPositions enumerates, for a given edge mutation, the vertices
// whose local rules may need to re-run. It is a thin, stateless computation
// over a *puzzle.PuzzleState — re-created cheaply wherever needed, the same
// way a Vertex lens is.
type AffectedPositions struct {
	State *puzzle.PuzzleState
}

// NewAffectedPositions builds an AffectedPositions helper over state.
func NewAffectedPositions(state *puzzle.PuzzleState) AffectedPositions {
	return AffectedPositions{State: state}
}

// ForHLine returns the vertices affected by a change to the horizontal edge
// between (x,y) and (x+1,y): both endpoints, plus — recursing exactly one
// step further along the same row — the next tile out on either side, but
// only when that further tile is a Straight bead (a straight rule's
// implications chain one tile further; any deeper chain is picked up by a
// later propagation round rather than by this lookup).
func (a AffectedPositions) ForHLine(x, y int) CoordSet {
	out := NewCoordSet(Coord{X: x, Y: y}, Coord{X: x + 1, Y: y})
	if t, ok := a.State.GetTile(x-1, y); ok && t == puzzle.Straight {
		out.Add(Coord{X: x - 1, Y: y})
	}
	if t, ok := a.State.GetTile(x+2, y); ok && t == puzzle.Straight {
		out.Add(Coord{X: x + 2, Y: y})
	}

	return out
}

// ForVLine is the vertical analogue of ForHLine, for the edge between
// (x,y) and (x,y+1).
func (a AffectedPositions) ForVLine(x, y int) CoordSet {
	out := NewCoordSet(Coord{X: x, Y: y}, Coord{X: x, Y: y + 1})
	if t, ok := a.State.GetTile(x, y-1); ok && t == puzzle.Straight {
		out.Add(Coord{X: x, Y: y - 1})
	}
	if t, ok := a.State.GetTile(x, y+2); ok && t == puzzle.Straight {
		out.Add(Coord{X: x, Y: y + 2})
	}

	return out
}
