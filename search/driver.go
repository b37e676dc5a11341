package search

import (
	"context"
	"time"

	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/loopgraph"
	"github.com/katalvlaran/masyu/propagate"
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/validate"
	"github.com/katalvlaran/masyu/vertex"
)

// Config tunes a Driver's search.
type Config struct {
	// MaxSearchDepth caps how many backtrack frames the driver will push.
	// Zero means unlimited.
	MaxSearchDepth int
	// Observer, if set, receives every edge mutation the driver and its
	// propagation engine make.
	Observer event.Publisher
	// StepDelay is how long the driver sleeps after reporting each
	// mutation to Observer, so a host can pace an animation. The driver
	// never sleeps when Observer is nil.
	StepDelay time.Duration
}

// frame is one entry of the backtrack stack: the state as it was before
// this frame's guess was applied, the candidates considered at this
// depth, and how far through them the frame has advanced.
type frame struct {
	snapshot   puzzle.Snapshot
	candidates []GuessCandidate
	nextIdx    int
}

// Driver runs propagation to a fixpoint and, when that alone is not
// enough, a depth-first guess-and-backtrack search over state.
type Driver struct {
	state  *puzzle.PuzzleState
	cfg    Config
	engine *propagate.Engine
	stack  []frame
}

// NewDriver builds a Driver over state using cfg.
func NewDriver(state *puzzle.PuzzleState, cfg Config) *Driver {
	observer := cfg.Observer
	if observer != nil && cfg.StepDelay > 0 {
		inner := observer
		observer = event.PublisherFunc(func(e event.Event) {
			inner.Publish(e)
			time.Sleep(cfg.StepDelay)
		})
	}

	return &Driver{
		state:  state,
		cfg:    cfg,
		engine: propagate.New(state, observer),
	}
}

// Solve runs propagation and, as needed, guess/backtrack search until
// state is SOLVED or the backtrack stack is exhausted. It returns true on
// SOLVED (state holds the loop); false means NO_SOLUTION, and state is
// restored to what it was when Solve was called. It returns ctx's
// cancellation error, or validate.ErrUnknownTileType if state holds a tile
// value outside the known set; state is restored in both cases.
func (d *Driver) Solve(ctx context.Context) (bool, error) {
	initial := d.state.Snapshot()
	d.engine.Seed()

	for {
		select {
		case <-ctx.Done():
			d.state.Restore(initial)

			return false, ctx.Err()
		default:
		}

		propagationOK, err := d.engine.Run()
		if err != nil {
			d.state.Restore(initial)

			return false, err
		}

		if propagationOK {
			status, err := validate.Validate(d.state)
			if err != nil {
				d.state.Restore(initial)

				return false, err
			}
			if status == validate.Solved {
				return true, nil
			}

			if status == validate.Unsolved {
				if d.pushGuess() {
					continue
				}
			}
		}

		if !d.backtrack() {
			d.state.Restore(initial)

			return false, nil
		}
	}
}

// pushGuess commits the highest-priority guess candidate on a fresh
// backtrack frame. It returns false — doing nothing — when there are no
// candidates left, or the stack is already at Config.MaxSearchDepth.
func (d *Driver) pushGuess() bool {
	if d.cfg.MaxSearchDepth > 0 && len(d.stack) >= d.cfg.MaxSearchDepth {
		return false
	}

	candidates := GuessCandidates(d.state)
	if len(candidates) == 0 {
		return false
	}

	d.stack = append(d.stack, frame{
		snapshot:   d.state.Snapshot(),
		candidates: candidates,
		nextIdx:    1,
	})
	d.applyGuess(candidates[0])

	return true
}

// backtrack restores the most recent frame's snapshot and advances it to
// its next untried candidate, popping exhausted frames along the way. It
// returns false once the whole stack is exhausted.
func (d *Driver) backtrack() bool {
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		d.state.Restore(top.snapshot)

		if top.nextIdx < len(top.candidates) {
			d.applyGuess(top.candidates[top.nextIdx])
			top.nextIdx++

			return true
		}

		d.stack = d.stack[:len(d.stack)-1]
	}

	return false
}

func (d *Driver) applyGuess(c GuessCandidate) {
	affected := vertex.NewAffectedPositions(d.state)
	var touched vertex.CoordSet
	if c.Direction == Horizontal {
		d.state.SetHLine(c.X, c.Y, puzzle.Line)
		touched = affected.ForHLine(c.X, c.Y)
	} else {
		d.state.SetVLine(c.X, c.Y, puzzle.Line)
		touched = affected.ForVLine(c.X, c.Y)
	}
	d.engine.MarkDirty(touched)
}

// VerifyLoop runs the independent graph cross-check (§4.9 in the design
// notes) over the driver's current state. It is meaningful only after
// Solve has returned true.
func (d *Driver) VerifyLoop() error {
	return loopgraph.CrossCheck(d.state)
}
