// Package search drives a depth-first guess-and-backtrack walk over a
// puzzle.PuzzleState whenever constraint propagation alone stalls short of
// a solution. It enumerates guess candidates in a fixed priority order,
// commits the highest-priority one, reruns propagation, and restores a
// saved snapshot to try the next candidate whenever a branch proves
// invalid or exhausts its own candidates — the same depth-first,
// deterministic-branching-order shape as the teacher's exact TSP
// branch-and-bound search, adapted here from tour-cost pruning to
// constraint-propagation pruning.
package search
