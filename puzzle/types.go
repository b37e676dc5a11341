package puzzle

// TileType classifies the constraint a tile imposes on the loop passing
// through its vertex. Tile kinds are fixed inputs; the solver never mutates
// them once a PuzzleState is constructed.
type TileType int

const (
	// Any imposes no constraint beyond the degree invariant.
	Any TileType = iota
	// Corner requires the loop to turn 90 degrees at this vertex.
	Corner
	// Straight requires the loop to pass straight through this vertex.
	Straight
)

// String renders the tile kind using the single-letter codes the
// serialize package also uses ('A', 'C', 'S').
func (t TileType) String() string {
	switch t {
	case Any:
		return "A"
	case Corner:
		return "C"
	case Straight:
		return "S"
	default:
		return "?"
	}
}

// LineState is the ternary value carried by an edge.
type LineState int

const (
	// LineAny means undecided: the edge may still become Line or Empty.
	LineAny LineState = iota
	// Line means the loop uses this edge.
	Line
	// Empty means the loop does not use this edge.
	Empty
)

// String renders the line state using the single-letter codes the
// serialize package also uses ('A', 'L', 'E').
func (s LineState) String() string {
	switch s {
	case LineAny:
		return "A"
	case Line:
		return "L"
	case Empty:
		return "E"
	default:
		return "?"
	}
}
