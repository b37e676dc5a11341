package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_BuiltinCornerScenarioSolves(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-puzzle", "corner"}, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 0, code)
	require.Empty(t, errOut.String())
	require.Contains(t, out.String(), "v=2;s=4x4;")
}

func TestRun_BuiltinUnsolvableScenarioReportsNoSolution(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-puzzle", "unsolvable"}, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 0, code)
	require.Equal(t, "NO_SOLUTION\n", out.String())
}

func TestRun_BuiltinEmptyScenarioIsTriviallySolved(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-puzzle", "empty"}, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 0, code)
	require.Empty(t, errOut.String())
	require.Contains(t, out.String(), "v=2;s=5x5;")
}

func TestRun_UnknownBuiltinScenarioIsUsageError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-puzzle", "nope"}, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "unknown built-in scenario")
}

func TestRun_ReadsPuzzleFromStdinWhenNoFlagGiven(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, strings.NewReader("v=1;s=4x4;AAAAACAAAAAAAAAA\n"), &out, &errOut)

	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "v=2;s=4x4;")
}

func TestRun_MalformedStdinBlobIsInvalidInput(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, strings.NewReader("not a puzzle\n"), &out, &errOut)

	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "INVALID_INPUT")
}

func TestRun_EmptyStdinWithNoFlagIsUsageError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, strings.NewReader(""), &out, &errOut)

	require.Equal(t, 1, code)
}
