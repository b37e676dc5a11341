package loopgraph

// BFSResult holds the outcome of a breadth-first traversal from one start
// vertex.
type BFSResult struct {
	// Order is the sequence of visited vertices.
	Order []Vertex
}

// BFS walks g breadth-first from start. OnVisit, if non-nil, is called for
// every vertex as it is first visited, the same hook shape as the
// teacher's traversal packages use for instrumentation.
func BFS(g *Graph, start Vertex, onVisit func(Vertex)) BFSResult {
	visited := map[Vertex]bool{start: true}
	queue := []Vertex{start}
	res := BFSResult{Order: []Vertex{start}}
	if onVisit != nil {
		onVisit(start)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(v) {
			if visited[n] {
				continue
			}
			visited[n] = true
			res.Order = append(res.Order, n)
			if onVisit != nil {
				onVisit(n)
			}
			queue = append(queue, n)
		}
	}

	return res
}
