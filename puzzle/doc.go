// Package puzzle defines the Masyu grid: tile constraints plus the two
// orthogonal edge grids that carry the loop's ternary line state.
//
// A PuzzleState owns three dense arrays — tiles, horizontal edges, vertical
// edges — and nothing else. Every other package in this module (vertex,
// rules, propagate, validate, search) is a stateless view or transient
// computation over a *PuzzleState; ownership never cycles back.
//
// Construction validates dimensions once, up front (NewPuzzleState); after
// that, Get/Set accessors trust in-grid coordinates and report out-of-grid
// queries as "absent" rather than panicking, per the solver's off-grid
// query contract.
package puzzle
