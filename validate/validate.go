package validate

import "github.com/katalvlaran/masyu/puzzle"

// Validate classifies state as Solved, Unsolved, or Invalid. It runs the
// cheap connectivity pre-check first and only falls through to the full
// loop walk when that pre-check cannot already rule the state out.
func Validate(state *puzzle.PuzzleState) (Status, error) {
	if !MayReachSingleComponent(state) {
		return Invalid, nil
	}

	return Walk(state)
}
