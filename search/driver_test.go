package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/search"
)

func newState(t *testing.T, w, h int) *puzzle.PuzzleState {
	t.Helper()
	s, err := puzzle.NewPuzzleState(w, h)
	require.NoError(t, err)

	return s
}

func TestDriver_AlreadySolvedNeedsNoGuessing(t *testing.T) {
	s := newState(t, 2, 2)
	s.SetHLine(0, 0, puzzle.Line)
	s.SetHLine(0, 1, puzzle.Line)
	s.SetVLine(0, 0, puzzle.Line)
	s.SetVLine(1, 0, puzzle.Line)

	d := search.NewDriver(s, search.Config{})
	solved, err := d.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, solved)
	require.NoError(t, d.VerifyLoop())
}

func TestDriver_IsolatedCornerClueIsUnsolvable(t *testing.T) {
	// A Corner bead alone in a 1x1 grid has no incident edges at all and
	// can never reach the degree its tile type requires.
	s := newState(t, 1, 1)
	s.SetTile(0, 0, puzzle.Corner)

	initial := s.Snapshot()
	d := search.NewDriver(s, search.Config{})
	solved, err := d.Solve(context.Background())
	require.NoError(t, err)
	require.False(t, solved)

	restored := s.Snapshot()
	require.Equal(t, initial, restored)
}

func TestDriver_MaxSearchDepthDoesNotBlockAlreadySolved(t *testing.T) {
	s := newState(t, 2, 2)
	s.SetHLine(0, 0, puzzle.Line)
	s.SetHLine(0, 1, puzzle.Line)
	s.SetVLine(0, 0, puzzle.Line)
	s.SetVLine(1, 0, puzzle.Line)

	d := search.NewDriver(s, search.Config{MaxSearchDepth: 1})
	solved, err := d.Solve(context.Background())
	require.NoError(t, err)
	require.True(t, solved)
}

func TestDriver_ObserverSeesPropagationMutations(t *testing.T) {
	s := newState(t, 3, 3)
	s.SetTile(0, 0, puzzle.Corner)

	var got []event.Event
	d := search.NewDriver(s, search.Config{
		Observer:       event.PublisherFunc(func(e event.Event) { got = append(got, e) }),
		MaxSearchDepth: 4,
	})
	_, err := d.Solve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got, "the forced corner edges should have been reported")
}

func TestDriver_ContextCancellationStopsSearch(t *testing.T) {
	s := newState(t, 3, 3)
	s.SetTile(1, 1, puzzle.Straight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := search.NewDriver(s, search.Config{})
	_, err := d.Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
