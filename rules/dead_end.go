package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// DeadEnd is R3: a vertex with only one undecided edge left and zero lines
// so far can never reach degree two through that lone edge alone — block it
// rather than leave the vertex stuck at degree zero.
//
// This rule only runs once FillEmptyEdges and OnlyLineOption have had their
// chance on the same visit, so by the time it runs the CountLines()==2 and
// CountLines()==1 cases are already resolved. Apply checks only CountAny(),
// so it also fires on a vertex already at degree three, blocking its last
// edge; the propagation engine's legality check then rejects that vertex.
type DeadEnd struct{}

// Apply blocks v's sole undecided edge when v.CountAny() == 1.
func (DeadEnd) Apply(v vertex.Vertex) vertex.CoordSet {
	if v.CountAny() != 1 {
		return noUpdates()
	}

	affected := vertex.NewAffectedPositions(v.State)

	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y-1, puzzle.Empty)
		return affected.ForVLine(v.X, v.Y-1)
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y, puzzle.Empty)
		return affected.ForVLine(v.X, v.Y)
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X-1, v.Y, puzzle.Empty)
		return affected.ForHLine(v.X-1, v.Y)
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X, v.Y, puzzle.Empty)
		return affected.ForHLine(v.X, v.Y)
	}

	return noUpdates()
}
