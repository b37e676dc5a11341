package loopgraph

import "github.com/katalvlaran/masyu/puzzle"

// Build constructs a Graph from every Line edge in state: one Vertex per
// grid coordinate touched by a Line edge, one Edge per Line edge.
func Build(state *puzzle.PuzzleState) *Graph {
	g := NewGraph()
	w, h := state.Width(), state.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			if s, _ := state.GetHLine(x, y); s == puzzle.Line {
				g.AddEdge(Vertex{X: x, Y: y}, Vertex{X: x + 1, Y: y})
			}
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if s, _ := state.GetVLine(x, y); s == puzzle.Line {
				g.AddEdge(Vertex{X: x, Y: y}, Vertex{X: x, Y: y + 1})
			}
		}
	}

	return g
}

// CrossCheck builds the Line-edge graph for state and confirms it is
// exactly one connected cycle: a BFS from an arbitrary vertex must reach
// every vertex the graph has (one component, not several disjoint loops),
// the graph's edge count must equal its vertex count, and every vertex
// must have degree exactly two (the signature of a simple cycle rather than
// some other connected shape, such as a loop with a dangling tail). A graph
// with no Line edges at all trivially passes — there is nothing to check.
func CrossCheck(state *puzzle.PuzzleState) error {
	g := Build(state)
	start, ok := g.AnyVertex()
	if !ok {
		return nil
	}

	res := BFS(g, start, nil)
	if len(res.Order) != g.VertexCount() {
		return ErrNotSingleCycle
	}
	if g.EdgeCount() != g.VertexCount() {
		return ErrNotSingleCycle
	}
	for v := range g.vertices {
		if len(g.adjacency[v]) != 2 {
			return ErrNotSingleCycle
		}
	}

	return nil
}
