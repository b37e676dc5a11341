// Package loopgraph builds a minimal generic graph out of a solved
// puzzle's Line edges and runs a breadth-first traversal over it as an
// independent second opinion on top of the loop walk in validate: a
// solved Masyu loop is, graph-theoretically, exactly a single cycle, so a
// BFS from any vertex must visit every vertex and edge exactly once and
// find the whole thing connected.
//
// The Graph/Vertex/Edge shapes and the BFS walker here are a deliberately
// narrowed adaptation of the teacher's general-purpose adjacency-list
// graph and breadth-first traversal: no weights, no directedness, no
// concurrency guards — this graph exists for the lifetime of one
// cross-check call and is never mutated concurrently.
package loopgraph
