// Package rules holds the six local inference rules that the propagation
// engine runs to a fixpoint. Each rule looks only at one Vertex and its
// immediate neighbors, decides zero or more incident edges (CornerTile also
// the edge one step past a neighbor), and reports which coordinates need
// re-checking as a result.
//
// The six rules, applied in order, are:
//
//	R1 FillEmptyEdges        — a fully-used (2-line) vertex blocks its rest.
//	R2 OnlyLineOption        — one undecided edge left on a 1-line vertex
//	                            must be the line (degree must reach 2).
//	R3 DeadEnd                — a vertex with only one undecided edge and no
//	                            line yet can never reach degree 2; block it.
//	R4 StraightTile           — a straight bead commits to the axis implied
//	                            by whichever line or blocked edge it already has.
//	R5 CornerNeighborOfStraight — a straight bead already showing two lines
//	                            forces its non-bend neighbor along the same
//	                            axis; the far side of that axis is then blocked.
//	R6 CornerTile             — a corner bead propagates to and blocks
//	                            collinear runs through its neighbors.
//
// Order matters only for efficiency, not correctness: running the rules to
// a fixpoint in any fixed order converges to the same deductions, since each
// rule only ever adds information (Line or Empty) to an edge that was
// previously undecided.
package rules
