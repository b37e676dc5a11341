package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// OnlyLineOption is R2: a vertex already showing one line, with exactly one
// undecided edge left, must route its second line through that edge — any
// other outcome would leave it at degree 1, which is never a legal terminal
// state for a closed loop with no endpoints.
type OnlyLineOption struct{}

// Apply commits v's sole undecided edge to Line when v.CountLines() == 1
// and v.CountAny() == 1.
func (OnlyLineOption) Apply(v vertex.Vertex) vertex.CoordSet {
	if v.CountLines() != 1 || v.CountAny() != 1 {
		return noUpdates()
	}

	affected := vertex.NewAffectedPositions(v.State)

	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y-1, puzzle.Line)
		return affected.ForVLine(v.X, v.Y-1)
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y, puzzle.Line)
		return affected.ForVLine(v.X, v.Y)
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X-1, v.Y, puzzle.Line)
		return affected.ForHLine(v.X-1, v.Y)
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X, v.Y, puzzle.Line)
		return affected.ForHLine(v.X, v.Y)
	}

	return noUpdates()
}
