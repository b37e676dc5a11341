package validate

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// VertexLegal reports whether v's current edges are still consistent with
// a legal final loop: at most two incident lines, and — once fully
// decided — exactly zero or two. Corner and Straight tiles additionally
// constrain their incident neighbors to still admit the bend (or
// non-bend) the tile requires.
func VertexLegal(v vertex.Vertex) (bool, error) {
	if v.IsFilled() && v.CountLines() != 0 && v.CountLines() != 2 {
		return false, nil
	}
	if v.CountLines() > 2 {
		return false, nil
	}

	switch v.Type() {
	case puzzle.Any:
		return true, nil
	case puzzle.Corner:
		return cornerLegal(v), nil
	case puzzle.Straight:
		return straightLegal(v), nil
	default:
		return false, ErrUnknownTileType
	}
}

// cornerLegal checks that a Corner vertex's decided lines each point at a
// neighbor that can still go straight through in that direction — a
// corner's line must not dead-end into a neighbor that cannot continue it.
func cornerLegal(v vertex.Vertex) bool {
	if !v.MayBeCorner() {
		return false
	}
	if s, ok := v.LineUp(); ok && s == puzzle.Line {
		up, ok := v.AdjacentVertexUp()
		if !ok || !up.MayBeStraight() || !up.MayPlaceLineUp() {
			return false
		}
	}
	if s, ok := v.LineRight(); ok && s == puzzle.Line {
		right, ok := v.AdjacentVertexRight()
		if !ok || !right.MayBeStraight() || !right.MayPlaceLineRight() {
			return false
		}
	}
	if s, ok := v.LineDown(); ok && s == puzzle.Line {
		down, ok := v.AdjacentVertexDown()
		if !ok || !down.MayBeStraight() || !down.MayPlaceLineDown() {
			return false
		}
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.Line {
		left, ok := v.AdjacentVertexLeft()
		if !ok || !left.MayBeStraight() || !left.MayPlaceLineLeft() {
			return false
		}
	}

	return true
}

// straightLegal checks that a Straight vertex's decided axis has at least
// one of its two neighbors along that axis still able to bend — a straight
// run can never be flanked on both ends by beads that are themselves
// forced straight, or the loop would never turn.
func straightLegal(v vertex.Vertex) bool {
	if !v.MayBeStraight() {
		return false
	}

	up, upOK := v.LineUp()
	down, downOK := v.LineDown()
	if (upOK && up == puzzle.Line) || (downOK && down == puzzle.Line) {
		upV, upExists := v.AdjacentVertexUp()
		downV, downExists := v.AdjacentVertexDown()
		if !upExists || !downExists {
			return false
		}
		if !upV.MayBeCorner() && !downV.MayBeCorner() {
			return false
		}
		if upV.IsStraight() && !downV.MayBeCorner() {
			return false
		}
		if downV.IsStraight() && !upV.MayBeCorner() {
			return false
		}
	}

	left, leftOK := v.LineLeft()
	right, rightOK := v.LineRight()
	if (leftOK && left == puzzle.Line) || (rightOK && right == puzzle.Line) {
		leftV, leftExists := v.AdjacentVertexLeft()
		rightV, rightExists := v.AdjacentVertexRight()
		if !leftExists || !rightExists {
			return false
		}
		if !leftV.MayBeCorner() && !rightV.MayBeCorner() {
			return false
		}
		if leftV.IsStraight() && !rightV.MayBeCorner() {
			return false
		}
		if rightV.IsStraight() && !leftV.MayBeCorner() {
			return false
		}
	}

	return true
}
