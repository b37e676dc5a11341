package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// CornerTile is R6: a corner bead's loop must bend at it, never pass
// straight through. Whichever direction ends up carrying the line, that
// line also extends one further step past the matching neighbor (a corner
// cannot have its line dead-end immediately outside the bead), and the
// opposite edge on the same axis is blocked at the bead. Any direction in
// which the line could not run on one step further is also blocked at the
// bead; the neighbors' other edges are left alone.
type CornerTile struct{}

// Apply commits and extends corner v's two lines, and blocks the axes a
// corner cannot use.
func (CornerTile) Apply(v vertex.Vertex) vertex.CoordSet {
	if v.Type() != puzzle.Corner {
		return noUpdates()
	}

	updates := vertex.NewCoordSet()

	up, _ := v.LineUp()
	down, _ := v.LineDown()
	left, _ := v.LineLeft()
	right, _ := v.LineRight()

	if up == puzzle.Line || !mayCornerPlaceDown(v) {
		updates.Union(placeLineUp(v))
		updates.Union(blockLineDown(v))
	}
	if down == puzzle.Line || !mayCornerPlaceUp(v) {
		updates.Union(placeLineDown(v))
		updates.Union(blockLineUp(v))
	}
	if left == puzzle.Line || !mayCornerPlaceRight(v) {
		updates.Union(placeLineLeft(v))
		updates.Union(blockLineRight(v))
	}
	if right == puzzle.Line || !mayCornerPlaceLeft(v) {
		updates.Union(placeLineRight(v))
		updates.Union(blockLineLeft(v))
	}

	if !mayCornerPlaceUp(v) {
		updates.Union(blockLineUp(v))
	}
	if !mayCornerPlaceDown(v) {
		updates.Union(blockLineDown(v))
	}
	if !mayCornerPlaceLeft(v) {
		updates.Union(blockLineLeft(v))
	}
	if !mayCornerPlaceRight(v) {
		updates.Union(blockLineRight(v))
	}

	return updates
}

// mayCornerPlaceDown reports whether v's down edge could still be a line
// given not just v's own state but that the vertex below could also still
// carry a line leaving it without turning into a straight tile's pass-through.
func mayCornerPlaceDown(v vertex.Vertex) bool {
	if !v.MayPlaceLineDown() {
		return false
	}
	down, ok := v.AdjacentVertexDown()
	if !ok {
		return false
	}
	l, _ := down.LineLeft()
	r, _ := down.LineRight()

	return down.MayPlaceLineDown() && l != puzzle.Line && r != puzzle.Line
}

func mayCornerPlaceUp(v vertex.Vertex) bool {
	if !v.MayPlaceLineUp() {
		return false
	}
	up, ok := v.AdjacentVertexUp()
	if !ok {
		return false
	}
	l, _ := up.LineLeft()
	r, _ := up.LineRight()

	return up.MayPlaceLineUp() && l != puzzle.Line && r != puzzle.Line
}

func mayCornerPlaceLeft(v vertex.Vertex) bool {
	if !v.MayPlaceLineLeft() {
		return false
	}
	left, ok := v.AdjacentVertexLeft()
	if !ok {
		return false
	}
	u, _ := left.LineUp()
	d, _ := left.LineDown()

	return left.MayPlaceLineLeft() && u != puzzle.Line && d != puzzle.Line
}

func mayCornerPlaceRight(v vertex.Vertex) bool {
	if !v.MayPlaceLineRight() {
		return false
	}
	right, ok := v.AdjacentVertexRight()
	if !ok {
		return false
	}
	u, _ := right.LineUp()
	d, _ := right.LineDown()

	return right.MayPlaceLineRight() && u != puzzle.Line && d != puzzle.Line
}

func placeLineUp(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y-1, puzzle.Line)
		updates.Union(affected.ForVLine(v.X, v.Y-1))
	}
	if up, ok := v.AdjacentVertexUp(); ok {
		if s, ok := up.LineUp(); ok && s == puzzle.LineAny {
			v.State.SetVLine(up.X, up.Y-1, puzzle.Line)
			updates.Union(affected.ForVLine(up.X, up.Y-1))
		}
	}

	return updates
}

func placeLineDown(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		v.State.SetVLine(v.X, v.Y, puzzle.Line)
		updates.Union(affected.ForVLine(v.X, v.Y))
	}
	if down, ok := v.AdjacentVertexDown(); ok {
		if s, ok := down.LineDown(); ok && s == puzzle.LineAny {
			v.State.SetVLine(down.X, down.Y, puzzle.Line)
			updates.Union(affected.ForVLine(down.X, down.Y))
		}
	}

	return updates
}

func placeLineLeft(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X-1, v.Y, puzzle.Line)
		updates.Union(affected.ForHLine(v.X-1, v.Y))
	}
	if left, ok := v.AdjacentVertexLeft(); ok {
		if s, ok := left.LineLeft(); ok && s == puzzle.LineAny {
			v.State.SetHLine(left.X-1, left.Y, puzzle.Line)
			updates.Union(affected.ForHLine(left.X-1, left.Y))
		}
	}

	return updates
}

func placeLineRight(v vertex.Vertex) vertex.CoordSet {
	affected := vertex.NewAffectedPositions(v.State)
	updates := vertex.NewCoordSet()

	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		v.State.SetHLine(v.X, v.Y, puzzle.Line)
		updates.Union(affected.ForHLine(v.X, v.Y))
	}
	if right, ok := v.AdjacentVertexRight(); ok {
		if s, ok := right.LineRight(); ok && s == puzzle.LineAny {
			v.State.SetHLine(right.X, right.Y, puzzle.Line)
			updates.Union(affected.ForHLine(right.X, right.Y))
		}
	}

	return updates
}

func blockLineUp(v vertex.Vertex) vertex.CoordSet {
	if s, ok := v.LineUp(); !ok || s != puzzle.LineAny {
		return noUpdates()
	}
	v.State.SetVLine(v.X, v.Y-1, puzzle.Empty)

	return vertex.NewAffectedPositions(v.State).ForVLine(v.X, v.Y-1)
}

func blockLineDown(v vertex.Vertex) vertex.CoordSet {
	if s, ok := v.LineDown(); !ok || s != puzzle.LineAny {
		return noUpdates()
	}
	v.State.SetVLine(v.X, v.Y, puzzle.Empty)

	return vertex.NewAffectedPositions(v.State).ForVLine(v.X, v.Y)
}

func blockLineLeft(v vertex.Vertex) vertex.CoordSet {
	if s, ok := v.LineLeft(); !ok || s != puzzle.LineAny {
		return noUpdates()
	}
	v.State.SetHLine(v.X-1, v.Y, puzzle.Empty)

	return vertex.NewAffectedPositions(v.State).ForHLine(v.X-1, v.Y)
}

func blockLineRight(v vertex.Vertex) vertex.CoordSet {
	if s, ok := v.LineRight(); !ok || s != puzzle.LineAny {
		return noUpdates()
	}
	v.State.SetHLine(v.X, v.Y, puzzle.Empty)

	return vertex.NewAffectedPositions(v.State).ForHLine(v.X, v.Y)
}
