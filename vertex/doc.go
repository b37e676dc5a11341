// Package vertex provides a read-only lens over a puzzle.PuzzleState at one
// coordinate, answering the local questions the propagation rules and the
// validator both need: adjacent line states, counts, and whether a corner
// or straight bead remains possible here.
//
// Vertex carries no state of its own beyond the coordinate it was built
// from; it is cheap to construct and re-construct on every query, the same
// way the teacher's graph views are recomputed from (graph, id) rather than
// cached.
package vertex
