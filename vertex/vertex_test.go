package vertex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

func newState(t *testing.T, w, h int) *puzzle.PuzzleState {
	t.Helper()
	s, err := puzzle.NewPuzzleState(w, h)
	require.NoError(t, err)

	return s
}

func TestVertex_OffGridEdgesAbsent(t *testing.T) {
	s := newState(t, 2, 2)
	v := vertex.New(s, 0, 0)

	_, ok := v.LineUp()
	require.False(t, ok)
	_, ok = v.LineLeft()
	require.False(t, ok)
	_, ok = v.LineDown()
	require.True(t, ok)
	_, ok = v.LineRight()
	require.True(t, ok)
}

func TestVertex_CountsAndFilled(t *testing.T) {
	s := newState(t, 3, 3)
	v := vertex.New(s, 1, 1)
	require.Equal(t, 0, v.CountLines())
	require.Equal(t, 4, v.CountAny())
	require.False(t, v.IsFilled())

	s.SetHLine(1, 1, puzzle.Line)
	s.SetHLine(0, 1, puzzle.Empty)
	require.Equal(t, 1, v.CountLines())
	require.Equal(t, 2, v.CountAny())
}

func TestVertex_IsCornerIsStraight(t *testing.T) {
	s := newState(t, 3, 3)
	v := vertex.New(s, 1, 1)

	// Perpendicular: right + down => corner.
	s.SetHLine(1, 1, puzzle.Line)
	s.SetVLine(1, 1, puzzle.Line)
	require.True(t, v.IsCorner())
	require.False(t, v.IsStraight())

	s2 := newState(t, 3, 3)
	v2 := vertex.New(s2, 1, 1)
	// Collinear: left + right => straight.
	s2.SetHLine(0, 1, puzzle.Line)
	s2.SetHLine(1, 1, puzzle.Line)
	require.True(t, v2.IsStraight())
	require.False(t, v2.IsCorner())
}

func TestVertex_MayBeCornerMayBeStraight(t *testing.T) {
	s := newState(t, 3, 3)
	v := vertex.New(s, 1, 1)
	// All undecided: both remain possible.
	require.True(t, v.MayBeCorner())
	require.True(t, v.MayBeStraight())

	// Block both verticals: only straight (horizontal) remains possible.
	s.SetVLine(1, 0, puzzle.Empty)
	s.SetVLine(1, 1, puzzle.Empty)
	require.False(t, v.MayBeCorner())
	require.True(t, v.MayBeStraight())
}

func TestVertex_AdjacentVertices(t *testing.T) {
	s := newState(t, 3, 3)
	v := vertex.New(s, 0, 0)
	neighbors := v.AdjacentVertices()
	require.Len(t, neighbors, 2, "corner cell only has down/right neighbors")
}

func TestAffectedPositions_HLineWithoutStraightNeighbors(t *testing.T) {
	s := newState(t, 5, 1)
	a := vertex.NewAffectedPositions(s)
	got := a.ForHLine(2, 0)
	require.Equal(t, vertex.NewCoordSet(vertex.Coord{X: 2, Y: 0}, vertex.Coord{X: 3, Y: 0}), got)
}

func TestAffectedPositions_HLineWithStraightNeighbors(t *testing.T) {
	s := newState(t, 5, 1)
	s.SetTile(1, 0, puzzle.Straight)
	s.SetTile(4, 0, puzzle.Straight)
	a := vertex.NewAffectedPositions(s)
	got := a.ForHLine(2, 0)
	want := vertex.NewCoordSet(
		vertex.Coord{X: 2, Y: 0}, vertex.Coord{X: 3, Y: 0},
		vertex.Coord{X: 1, Y: 0}, vertex.Coord{X: 4, Y: 0},
	)
	require.Equal(t, want, got)
}

func TestAffectedPositions_VLine(t *testing.T) {
	s := newState(t, 1, 5)
	s.SetTile(0, 1, puzzle.Straight)
	a := vertex.NewAffectedPositions(s)
	got := a.ForVLine(0, 2)
	want := vertex.NewCoordSet(
		vertex.Coord{X: 0, Y: 2}, vertex.Coord{X: 0, Y: 3},
		vertex.Coord{X: 0, Y: 1},
	)
	require.Equal(t, want, got)
}
