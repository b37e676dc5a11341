// Package propagate drives the rules package to a fixpoint over a
// puzzle.PuzzleState: a dirty-vertex work queue that re-visits a
// coordinate whenever one of its own edges changes, until nothing is left
// to recheck.
//
// The driving loop — seed, dequeue, visit, enqueue fallout — follows the
// same walker shape as a graph breadth-first traversal, with one
// difference the fixpoint nature of constraint propagation requires: a
// coordinate can be re-enqueued after it has already been visited, any
// number of times, as long as some rule produced a change on that visit.
package propagate
