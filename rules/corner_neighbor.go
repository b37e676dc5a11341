package rules

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// CornerNeighborOfStraight is R5: a straight bead that already shows both
// its lines forces the loop one further step past itself. If that far
// vertex cannot possibly turn into the matching corner, the near side of
// the straight bead (the vertex under inspection) cannot carry the line
// that would create it either.
type CornerNeighborOfStraight struct{}

// Apply blocks the one edge of v that would otherwise complete an
// impossible corner next to an already-decided straight neighbor.
func (CornerNeighborOfStraight) Apply(v vertex.Vertex) vertex.CoordSet {
	for _, adj := range v.AdjacentVertices() {
		if adj.Type() != puzzle.Straight || adj.CountLines() != 2 {
			continue
		}

		compliment, ok := complimentCorner(adj, v)
		if !ok || compliment.MayBeCorner() {
			continue
		}

		affected := vertex.NewAffectedPositions(v.State)
		switch {
		case adj.Y < v.Y:
			if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
				v.State.SetVLine(v.X, v.Y, puzzle.Empty)

				return affected.ForVLine(v.X, v.Y)
			}
		case adj.X > v.X:
			if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
				v.State.SetHLine(v.X-1, v.Y, puzzle.Empty)

				return affected.ForHLine(v.X-1, v.Y)
			}
		case adj.Y > v.Y:
			if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
				v.State.SetVLine(v.X, v.Y-1, puzzle.Empty)

				return affected.ForVLine(v.X, v.Y-1)
			}
		case adj.X < v.X:
			if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
				v.State.SetHLine(v.X, v.Y, puzzle.Empty)

				return affected.ForHLine(v.X, v.Y)
			}
		}
	}

	return noUpdates()
}

// complimentCorner finds the vertex at the other end of straight from
// current, along whichever axis straight's two lines run — the vertex
// that would have to become the corner if current's side does.
func complimentCorner(straight, current vertex.Vertex) (vertex.Vertex, bool) {
	left, _ := straight.LineLeft()
	right, _ := straight.LineRight()
	up, _ := straight.LineUp()
	down, _ := straight.LineDown()

	var a, b vertex.Coord
	switch {
	case left == puzzle.Line && right == puzzle.Line:
		a, b = vertex.Coord{X: straight.X - 1, Y: straight.Y}, vertex.Coord{X: straight.X + 1, Y: straight.Y}
	case up == puzzle.Line && down == puzzle.Line:
		a, b = vertex.Coord{X: straight.X, Y: straight.Y - 1}, vertex.Coord{X: straight.X, Y: straight.Y + 1}
	default:
		return vertex.Vertex{}, false
	}

	cur := current.Coord()
	var other vertex.Coord
	switch cur {
	case a:
		other = b
	case b:
		other = a
	default:
		return vertex.Vertex{}, false
	}

	return vertex.New(straight.State, other.X, other.Y), true
}
