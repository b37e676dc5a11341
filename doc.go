// Package masyu solves Masyu grid puzzles: find the unique closed loop of
// grid edges that turns at every filled (CORNER) bead, passes straight
// through every hollow (STRAIGHT) bead, and otherwise obeys no constraint.
//
// The package composes a deductive constraint-propagation engine
// (propagate) with a depth-first guess/backtrack search (search) and a
// structural validator (validate) into a single entry point, Solve.
// puzzle.PuzzleState is the only mutable value; every other package is a
// stateless view or transient computation over it.
//
//	state, _ := puzzle.NewPuzzleState(4, 4)
//	state.SetTile(1, 1, puzzle.Corner)
//	status, err := masyu.Solve(context.Background(), state, masyu.Config{})
//
// Persisted puzzles round-trip through the serialize package; an optional
// mutation observer (event) lets a host animate the solve; loopgraph offers
// an independent cross-check that a solved state really is one connected
// loop, used throughout this package's own test suite.
package masyu
