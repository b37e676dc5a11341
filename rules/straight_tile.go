package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// StraightTile is R4: a straight bead's loop must pass through it in a
// straight line, never bending. Once either axis is ruled out — by an
// existing line on the other axis, or by that axis having no room left to
// bend — the remaining axis is forced.
type StraightTile struct{}

// Apply commits both undecided edges of a straight axis once the other
// axis is known to be unusable.
func (StraightTile) Apply(v vertex.Vertex) vertex.CoordSet {
	if v.Type() != puzzle.Straight || v.CountLines() == 2 {
		return noUpdates()
	}

	down, _ := v.LineDown()
	up, _ := v.LineUp()
	left, _ := v.LineLeft()
	right, _ := v.LineRight()

	switch {
	case down == puzzle.Line || up == puzzle.Line ||
		!v.MayPlaceLineLeft() || !v.MayPlaceLineRight():
		return populateVertical(v)
	case left == puzzle.Line || right == puzzle.Line ||
		!v.MayPlaceLineUp() || !v.MayPlaceLineDown():
		return populateHorizontal(v)
	default:
		return noUpdates()
	}
}

func populateHorizontal(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X-1, v.Y, puzzle.Line)
		updates.Union(affected.ForHLine(v.X-1, v.Y))
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X, v.Y, puzzle.Line)
		updates.Union(affected.ForHLine(v.X, v.Y))
	}

	return updates
}

func populateVertical(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y-1, puzzle.Line)
		updates.Union(affected.ForVLine(v.X, v.Y-1))
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y, puzzle.Line)
		updates.Union(affected.ForVLine(v.X, v.Y))
	}

	return updates
}
