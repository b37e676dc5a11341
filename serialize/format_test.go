package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/serialize"
	"github.com/katalvlaran/masyu/validate"
)

func TestMarshal_VersionTiles_RowMajorOrder(t *testing.T) {
	s, err := puzzle.NewPuzzleState(2, 2)
	require.NoError(t, err)
	s.SetTile(1, 0, puzzle.Corner)
	s.SetTile(0, 1, puzzle.Straight)

	got := serialize.Marshal(s, serialize.VersionTiles)
	require.Equal(t, "v=1;s=2x2;ACSA", got)
}

func TestMarshal_VersionFull_IncludesLineSections(t *testing.T) {
	s, err := puzzle.NewPuzzleState(2, 2)
	require.NoError(t, err)
	s.SetHLine(0, 0, puzzle.Line)
	s.SetVLine(1, 0, puzzle.Empty)

	got := serialize.Marshal(s, serialize.VersionFull)
	require.Equal(t, "v=2;s=2x2;AAAA;LA;AE", got)
}

func TestUnmarshal_VersionTiles_RoundTrips(t *testing.T) {
	original, err := puzzle.NewPuzzleState(3, 2)
	require.NoError(t, err)
	original.SetTile(0, 0, puzzle.Corner)
	original.SetTile(2, 1, puzzle.Straight)

	blob := serialize.Marshal(original, serialize.VersionTiles)
	decoded, err := serialize.Unmarshal(blob)
	require.NoError(t, err)

	require.Equal(t, original.Snapshot(), decoded.Snapshot())
}

func TestUnmarshal_VersionFull_RoundTripsLineState(t *testing.T) {
	original, err := puzzle.NewPuzzleState(2, 2)
	require.NoError(t, err)
	original.SetTile(0, 0, puzzle.Corner)
	original.SetHLine(0, 0, puzzle.Line)
	original.SetHLine(0, 1, puzzle.Line)
	original.SetVLine(0, 0, puzzle.Line)
	original.SetVLine(1, 0, puzzle.Line)

	blob := serialize.Marshal(original, serialize.VersionFull)
	decoded, err := serialize.Unmarshal(blob)
	require.NoError(t, err)

	require.Equal(t, original.Snapshot(), decoded.Snapshot())
}

func TestUnmarshal_RejectsWrongSectionCount(t *testing.T) {
	_, err := serialize.Unmarshal("v=1;s=2x2")
	require.ErrorIs(t, err, serialize.ErrMalformedBlob)
}

func TestUnmarshal_RejectsUnsupportedVersion(t *testing.T) {
	_, err := serialize.Unmarshal("v=9;s=1x1;A")
	require.ErrorIs(t, err, serialize.ErrUnsupportedVersion)
}

func TestUnmarshal_RejectsMissingVersionPrefix(t *testing.T) {
	_, err := serialize.Unmarshal("1;s=1x1;A")
	require.ErrorIs(t, err, serialize.ErrMalformedBlob)
}

func TestUnmarshal_RejectsDimensionMismatch(t *testing.T) {
	_, err := serialize.Unmarshal("v=1;s=2x2;AAA")
	require.ErrorIs(t, err, serialize.ErrDimensionMismatch)
}

func TestUnmarshal_RejectsUnknownTileChar(t *testing.T) {
	_, err := serialize.Unmarshal("v=1;s=1x1;X")
	require.ErrorIs(t, err, serialize.ErrUnknownTileChar)
}

func TestUnmarshal_RejectsUnknownLineChar(t *testing.T) {
	_, err := serialize.Unmarshal("v=2;s=1x2;AA;;X")
	require.ErrorIs(t, err, serialize.ErrUnknownLineChar)
}

func TestUnmarshal_SingleColumnGridHasNoHLines(t *testing.T) {
	s, err := puzzle.NewPuzzleState(1, 3)
	require.NoError(t, err)
	s.SetVLine(0, 0, puzzle.Line)

	blob := serialize.Marshal(s, serialize.VersionFull)
	decoded, err := serialize.Unmarshal(blob)
	require.NoError(t, err)
	require.Equal(t, s.Snapshot(), decoded.Snapshot())
}

func TestScenarioG_SolvedStateRoundTripsAndStaysSolved(t *testing.T) {
	// A single CORNER at (1,1) in a 4x4 grid, solved by the square loop
	// (1,1)-(3,1)-(3,3)-(1,3) that turns at the corner and runs straight
	// through (2,1) and (1,2).
	s, err := puzzle.NewPuzzleState(4, 4)
	require.NoError(t, err)
	s.SetTile(1, 1, puzzle.Corner)
	s.SetHLine(1, 1, puzzle.Line)
	s.SetHLine(2, 1, puzzle.Line)
	s.SetHLine(1, 3, puzzle.Line)
	s.SetHLine(2, 3, puzzle.Line)
	s.SetVLine(1, 1, puzzle.Line)
	s.SetVLine(1, 2, puzzle.Line)
	s.SetVLine(3, 1, puzzle.Line)
	s.SetVLine(3, 2, puzzle.Line)

	blob := serialize.Marshal(s, serialize.VersionFull)
	decoded, err := serialize.Unmarshal(blob)
	require.NoError(t, err)
	require.Equal(t, s.Snapshot(), decoded.Snapshot())

	status, err := validate.Validate(decoded)
	require.NoError(t, err)
	require.Equal(t, validate.Solved, status)
}
