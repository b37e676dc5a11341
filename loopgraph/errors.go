package loopgraph

import "errors"

// ErrNotSingleCycle is returned by CrossCheck when the Line edges of a
// supposedly SOLVED state do not form exactly one connected cycle — every
// vertex must have degree two, the edge count must equal the vertex count,
// and a breadth-first walk from any vertex must reach every vertex the
// graph has.
var ErrNotSingleCycle = errors.New("loopgraph: line edges do not form a single connected cycle")
