package rules

import "github.com/katalvlaran/masyu/vertex"

// Rule is one local inference step. Apply inspects v (and, where needed,
// its immediate neighbors), mutates zero or more of v's incident edges
// through v.State (CornerTile also sets the edge one step past a
// neighbor), and returns the coordinates that should be re-checked
// as a result. An empty, non-nil CoordSet means "nothing changed here".
type Rule interface {
	Apply(v vertex.Vertex) vertex.CoordSet
}

// All lists the six rules in the order the propagation engine runs them
// within a single vertex visit. The order is a tuning choice, not a
// correctness requirement — see the package doc.
var All = []Rule{
	FillEmptyEdges{},
	OnlyLineOption{},
	DeadEnd{},
	StraightTile{},
	CornerNeighborOfStraight{},
	CornerTile{},
}

func noUpdates() vertex.CoordSet { return vertex.NewCoordSet() }
