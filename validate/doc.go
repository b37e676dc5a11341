// Package validate classifies a puzzle.PuzzleState as SOLVED, UNSOLVED, or
// INVALID.
//
// Vertex legality (VertexLegal) is a purely local check: does this one
// vertex's current line count and tile type still admit a legal final
// degree. The loop walk (Walk) is the global check: starting from an
// arbitrary decided Line edge, walk the loop it belongs to and confirm it
// closes back on itself having covered every clue vertex and every decided
// edge exactly once.
//
// A cheap BFS-based connectivity pre-check (MayReachSingleComponent) is
// available to the search driver as a fail-fast filter before the full
// walk, the way the teacher's grid connectivity pass partitions a grid
// into components before any heavier analysis runs on it.
package validate
