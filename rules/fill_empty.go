package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// FillEmptyEdges is R1: once a vertex already has its two lines, every
// remaining undecided edge can never be used — the degree invariant caps
// incident lines at two.
type FillEmptyEdges struct{}

// Apply blocks every still-undecided edge of v once v.CountLines() == 2.
func (FillEmptyEdges) Apply(v vertex.Vertex) vertex.CoordSet {
	if v.CountLines() != 2 {
		return noUpdates()
	}

	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y-1, puzzle.Empty)
		updates.Union(affected.ForVLine(v.X, v.Y-1))
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y, puzzle.Empty)
		updates.Union(affected.ForVLine(v.X, v.Y))
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X-1, v.Y, puzzle.Empty)
		updates.Union(affected.ForHLine(v.X-1, v.Y))
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X, v.Y, puzzle.Empty)
		updates.Union(affected.ForHLine(v.X, v.Y))
	}

	return updates
}
