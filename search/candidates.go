package search

import (
	"sort"

	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// LineDirection names which edge grid a GuessCandidate mutates.
type LineDirection int

const (
	// Horizontal selects an hline coordinate.
	Horizontal LineDirection = iota
	// Vertical selects a vline coordinate.
	Vertical
)

// GuessCandidate names one undecided edge the search driver could commit
// to Line as its next guess.
type GuessCandidate struct {
	Direction LineDirection
	X, Y      int
}

// GuessPriority ranks how promising a candidate's owning vertex is. Higher
// values are tried first.
type GuessPriority int

const (
	// Remaining is the default priority for an untouched Any tile.
	Remaining GuessPriority = iota
	// PartialAny is an Any tile that already carries at least one Line.
	PartialAny
	// UnknownRestrictive is a Corner tile with no lines yet, or a Straight
	// tile with or without lines.
	UnknownRestrictive GuessPriority = 3
	// PartialCorner is a Corner tile that already carries at least one
	// Line — the most constrained, and so most informative, guess point.
	PartialCorner GuessPriority = 5
)

// GuessCandidates enumerates every undecided edge incident to an
// unfilled vertex in state, deduplicated by (Direction, X, Y) keeping the
// highest priority seen for each, and sorted highest-priority first. Ties
// within a priority level are broken by scan order (row-major, then the
// up/right/down/left enumeration order within a vertex) for determinism.
func GuessCandidates(state *puzzle.PuzzleState) []GuessCandidate {
	best := make(map[GuessCandidate]GuessPriority)
	order := make([]GuessCandidate, 0)

	w, h := state.Width(), state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := vertex.New(state, x, y)
			if v.IsFilled() {
				continue
			}
			p := priorityOf(v)
			for _, c := range candidatesAt(v) {
				if existing, ok := best[c]; !ok || p > existing {
					if !ok {
						order = append(order, c)
					}
					best[c] = p
				}
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return best[order[i]] > best[order[j]]
	})

	return order
}

func priorityOf(v vertex.Vertex) GuessPriority {
	switch {
	case v.Type() == puzzle.Corner && v.CountLines() > 0:
		return PartialCorner
	case v.Type() != puzzle.Any:
		return UnknownRestrictive
	case v.CountLines() > 0:
		return PartialAny
	default:
		return Remaining
	}
}

func candidatesAt(v vertex.Vertex) []GuessCandidate {
	out := make([]GuessCandidate, 0, 4)
	if s, ok := v.LineUp(); ok && s == puzzle.LineAny {
		out = append(out, GuessCandidate{Vertical, v.X, v.Y - 1})
	}
	if s, ok := v.LineRight(); ok && s == puzzle.LineAny {
		out = append(out, GuessCandidate{Horizontal, v.X, v.Y})
	}
	if s, ok := v.LineDown(); ok && s == puzzle.LineAny {
		out = append(out, GuessCandidate{Vertical, v.X, v.Y})
	}
	if s, ok := v.LineLeft(); ok && s == puzzle.LineAny {
		out = append(out, GuessCandidate{Horizontal, v.X - 1, v.Y})
	}

	return out
}
