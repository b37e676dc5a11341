package masyu

import "github.com/katalvlaran/masyu/validate"

// Status classifies the outcome of Solve or Validate. Solve only ever
// returns StatusSolved or StatusNoSolution; Validate can additionally
// return StatusUnsolved for a partial, still-contradiction-free state.
type Status int

const (
	// StatusSolved means state holds the unique closed loop.
	StatusSolved Status = iota
	// StatusUnsolved means state has no contradiction yet but is not a
	// complete loop: some clue vertex is underfilled, or no Line edges
	// exist yet while some clue vertex needs one. Only Validate returns
	// this; Solve resolves it one way
	// or the other before returning.
	StatusUnsolved
	// StatusInvalid means state already violates a structural invariant:
	// an illegal vertex, or Line edges forming something other than one
	// simple closed loop.
	StatusInvalid
	// StatusNoSolution means the search exhausted every guess (or hit
	// Config.MaxSearchDepth) without finding a loop. This is a definite,
	// valid outcome, not an error.
	StatusNoSolution
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "SOLVED"
	case StatusInvalid:
		return "INVALID"
	case StatusNoSolution:
		return "NO_SOLUTION"
	default:
		return "UNSOLVED"
	}
}

func fromValidateStatus(s validate.Status) Status {
	switch s {
	case validate.Solved:
		return StatusSolved
	case validate.Invalid:
		return StatusInvalid
	default:
		return StatusUnsolved
	}
}
