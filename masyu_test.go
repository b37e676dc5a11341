package masyu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/masyu"
	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/loopgraph"
	"github.com/katalvlaran/masyu/puzzle"
)

func TestSolve_AllAnyTilesTriviallySolvedWithNoLoop(t *testing.T) {
	s, err := puzzle.NewPuzzleState(5, 5)
	require.NoError(t, err)

	before := s.Snapshot()
	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
	require.Equal(t, before, s.Snapshot())
}

func TestSolve_TwoAdjacentCornersHaveNoSolution(t *testing.T) {
	s, err := puzzle.NewPuzzleState(5, 5)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)
	s.SetTile(2, 1, puzzle.Corner)

	before := s.Snapshot()
	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusNoSolution, status)
	require.Equal(t, before, s.Snapshot())
}

func TestSolve_SingleCornerTurnsAndRunsStraightThroughBothNeighbors(t *testing.T) {
	// A corner at (1,1) has no room to go up or left and still run one
	// step further, so every solution turns it right and down, straight
	// through (2,1) and (1,2).
	s, err := puzzle.NewPuzzleState(4, 4)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)

	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
	require.NoError(t, loopgraph.CrossCheck(s))

	wantLine := func(x, y int, want puzzle.LineState) {
		t.Helper()
		v, ok := s.GetHLine(x, y)
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	wantLine(1, 1, puzzle.Line)
	wantLine(2, 1, puzzle.Line)
	wantLine(0, 2, puzzle.Empty)
	wantLine(1, 2, puzzle.Empty)
}

func TestSolve_IsIdempotentOnAnAlreadySolvedState(t *testing.T) {
	s, err := puzzle.NewPuzzleState(4, 4)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)

	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)

	after := s.Snapshot()
	status, err = masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
	require.Equal(t, after, s.Snapshot())
}

func TestSolve_ContextCancellationReturnsError(t *testing.T) {
	s, err := puzzle.NewPuzzleState(5, 5)
	require.NoError(t, err)
	s.SetTile(2, 2, puzzle.Straight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = masyu.Solve(ctx, s, masyu.Config{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidate_DisjointLoopsAreInvalid(t *testing.T) {
	s, err := puzzle.NewPuzzleState(4, 2)
	require.NoError(t, err)
	s.SetHLine(0, 0, puzzle.Line)
	s.SetHLine(0, 1, puzzle.Line)
	s.SetVLine(0, 0, puzzle.Line)
	s.SetVLine(1, 0, puzzle.Line)

	s.SetHLine(2, 0, puzzle.Line)
	s.SetHLine(2, 1, puzzle.Line)
	s.SetVLine(2, 0, puzzle.Line)
	s.SetVLine(3, 0, puzzle.Line)

	require.Equal(t, masyu.StatusInvalid, masyu.Validate(s))
}

func TestValidate_AllAnyGridWithNoLinesIsVacuouslySolved(t *testing.T) {
	// No clue tile needs a line and none was drawn: a valid "no loop"
	// solution, not a state still awaiting work.
	s, err := puzzle.NewPuzzleState(3, 3)
	require.NoError(t, err)

	require.Equal(t, masyu.StatusSolved, masyu.Validate(s))
}

func TestValidate_ClueWithNoLinesYetIsUnsolved(t *testing.T) {
	s, err := puzzle.NewPuzzleState(3, 3)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)

	require.Equal(t, masyu.StatusUnsolved, masyu.Validate(s))
}

func TestValidate_MatchesSolveOutcome(t *testing.T) {
	s, err := puzzle.NewPuzzleState(4, 4)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)

	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
	require.Equal(t, masyu.StatusSolved, masyu.Validate(s))
}

func TestSolve_ObserverReceivesMutationsDuringSolve(t *testing.T) {
	s, err := puzzle.NewPuzzleState(4, 4)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)

	var got []event.Event
	cfg := masyu.Config{Observer: event.PublisherFunc(func(e event.Event) { got = append(got, e) })}

	status, err := masyu.Solve(context.Background(), s, cfg)
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
	require.NotEmpty(t, got)
}

func TestSolve_OneByOneGridWithNoTileIsTriviallySolved(t *testing.T) {
	s, err := puzzle.NewPuzzleState(1, 1)
	require.NoError(t, err)

	status, err := masyu.Solve(context.Background(), s, masyu.Config{})
	require.NoError(t, err)
	require.Equal(t, masyu.StatusSolved, status)
}
