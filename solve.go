package masyu

import (
	"context"
	"time"

	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/search"
	"github.com/katalvlaran/masyu/validate"
)

// Config tunes a Solve call. The zero value runs unlimited search with no
// observer.
type Config struct {
	// MaxSearchDepth caps how many backtrack frames the search driver will
	// push before giving up with StatusNoSolution. Zero means unlimited.
	MaxSearchDepth int
	// Observer, if set, receives every edge mutation Solve makes, both
	// from propagation and from guesses.
	Observer event.Publisher
	// StepDelay, when Observer is set, is how long Solve pauses after
	// reporting each mutation, letting a host pace an animation. Solve
	// never sleeps when Observer is nil.
	StepDelay time.Duration
}

func (c Config) toDriverConfig() search.Config {
	return search.Config{
		MaxSearchDepth: c.MaxSearchDepth,
		Observer:       c.Observer,
		StepDelay:      c.StepDelay,
	}
}

// Solve runs propagation and, as needed, guess/backtrack search against
// state until it is solved or provably has no solution. On StatusSolved,
// state holds the unique loop. On StatusNoSolution, state is restored to
// exactly what it was when Solve was called. It returns ctx's cancellation
// error, or validate.ErrUnknownTileType if state holds a tile value outside
// the known set.
func Solve(ctx context.Context, state *puzzle.PuzzleState, cfg Config) (Status, error) {
	driver := search.NewDriver(state, cfg.toDriverConfig())

	solved, err := driver.Solve(ctx)
	if err != nil {
		return StatusNoSolution, err
	}
	if !solved {
		return StatusNoSolution, nil
	}

	return StatusSolved, nil
}

// Validate reports state's current standing without mutating it:
// StatusSolved for a complete legal loop, StatusUnsolved for a partial
// state with no contradiction yet, StatusInvalid for one that already
// violates a structural invariant.
func Validate(state *puzzle.PuzzleState) Status {
	status, err := validate.Validate(state)
	if err != nil {
		return StatusInvalid
	}

	return fromValidateStatus(status)
}
