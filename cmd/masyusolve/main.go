// Command masyusolve reads a persisted Masyu puzzle, solves it, and
// prints the result.
//
// Usage:
//
//	masyusolve -puzzle corner < /dev/null
//	cat puzzle.txt | masyusolve
//
// With no -puzzle flag, the persisted blob (see the serialize package) is
// read from stdin. -puzzle selects one of a few named built-in scenarios
// instead, useful for smoke-testing without a file on hand.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/masyu"
	"github.com/katalvlaran/masyu/serialize"
)

// builtinScenarios names a few fixed puzzles usable via -puzzle without a
// file on hand, covering the boundary and seeded cases exercised in this
// module's own test corpus.
var builtinScenarios = map[string]string{
	// 5x5, all ANY, no edges: the trivial "no loop" solution.
	"empty": "v=1;s=5x5;AAAAAAAAAAAAAAAAAAAAAAAAA",
	// 4x4 with a single CORNER at (1,1): solves to a loop that turns at
	// (1,1) and runs straight through (2,1) and (1,2).
	"corner": "v=1;s=4x4;AAAAACAAAAAAAAAA",
	// 5x5 with two adjacent CORNERs at (1,1) and (2,1): unsolvable.
	"unsolvable": "v=1;s=5x5;AAAAAACCAAAAAAAAAAAAAAAAA",
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("masyusolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	puzzleName := fs.String("puzzle", "", "name of a built-in scenario instead of reading stdin")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	blob, err := readBlob(*puzzleName, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "masyusolve:", err)

		return 1
	}

	state, err := serialize.Unmarshal(blob)
	if err != nil {
		fmt.Fprintln(stderr, "masyusolve: INVALID_INPUT:", err)

		return 1
	}

	status, err := masyu.Solve(context.Background(), state, masyu.Config{})
	if err != nil {
		fmt.Fprintln(stderr, "masyusolve:", err)

		return 1
	}

	if status != masyu.StatusSolved {
		fmt.Fprintln(stdout, "NO_SOLUTION")

		return 0
	}

	fmt.Fprintln(stdout, serialize.Marshal(state, serialize.VersionFull))

	return 0
}

func readBlob(puzzleName string, stdin io.Reader) (string, error) {
	if puzzleName != "" {
		blob, ok := builtinScenarios[puzzleName]
		if !ok {
			return "", fmt.Errorf("unknown built-in scenario %q", puzzleName)
		}

		return blob, nil
	}

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}

		return "", errors.New("no puzzle on stdin and no -puzzle flag given")
	}

	return scanner.Text(), nil
}
