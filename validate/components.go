package validate

import "github.com/katalvlaran/masyu/puzzle"

// MayReachSingleComponent runs a cheap breadth-first partition of every
// clue vertex and every vertex touched by a decided Line edge, treating two
// vertices as connected when an edge between them is Line or still
// LineAny (i.e. not yet ruled out). If that reachability graph already
// splits into more than one component, no single loop can possibly visit
// every clue, so the state can be discarded before running the full
// (more expensive) loop walk.
//
// This mirrors the teacher's grid connected-components pass: a BFS flood
// fill from each unvisited node, grouping nodes reachable from it,
// repeated until every node of interest has been assigned a component.
func MayReachSingleComponent(state *puzzle.PuzzleState) bool {
	interesting := interestingVertices(state)
	if len(interesting) <= 1 {
		return true
	}

	visited := make(map[[2]int]bool, len(interesting))
	var start [2]int
	for c := range interesting {
		start = c

		break
	}

	queue := []([2]int){start}
	visited[start] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range possibleNeighbors(state, c[0], c[1]) {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	for c := range interesting {
		if !visited[c] {
			return false
		}
	}

	return true
}

func interestingVertices(state *puzzle.PuzzleState) map[[2]int]bool {
	out := make(map[[2]int]bool)
	w, h := state.Width(), state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if t, _ := state.GetTile(x, y); t != puzzle.Any {
				out[[2]int{x, y}] = true
			}
			if s, ok := state.GetHLine(x, y); ok && s == puzzle.Line {
				out[[2]int{x, y}] = true
				out[[2]int{x + 1, y}] = true
			}
			if s, ok := state.GetVLine(x, y); ok && s == puzzle.Line {
				out[[2]int{x, y}] = true
				out[[2]int{x, y + 1}] = true
			}
		}
	}

	return out
}

func possibleNeighbors(state *puzzle.PuzzleState, x, y int) [][2]int {
	var out [][2]int
	if s, ok := state.GetHLine(x-1, y); ok && s != puzzle.Empty {
		out = append(out, [2]int{x - 1, y})
	}
	if s, ok := state.GetHLine(x, y); ok && s != puzzle.Empty {
		out = append(out, [2]int{x + 1, y})
	}
	if s, ok := state.GetVLine(x, y-1); ok && s != puzzle.Empty {
		out = append(out, [2]int{x, y - 1})
	}
	if s, ok := state.GetVLine(x, y); ok && s != puzzle.Empty {
		out = append(out, [2]int{x, y + 1})
	}

	return out
}
