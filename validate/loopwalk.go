package validate

import (
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/vertex"
)

// Status classifies the outcome of a loop walk over a puzzle.PuzzleState.
type Status int

const (
	// Unsolved means no Line edges exist yet while some clue vertex needs
	// one, or the walk ran off the end of the loop before every clue and
	// every Line edge was consumed.
	Unsolved Status = iota
	// Solved means a single closed loop was found that passes through
	// every clue vertex and consumes every Line edge exactly once, or there
	// is no Line edge and no clue vertex at all.
	Solved
	// Invalid means a vertex failed VertexLegal along the way, or the
	// walk closed having left clue vertices or Line edges unvisited
	// (more than one loop, or a clue not on the loop at all).
	Invalid
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "SOLVED"
	case Invalid:
		return "INVALID"
	default:
		return "UNSOLVED"
	}
}

type lineDir int

const (
	horizontal lineDir = iota
	vertical
)

type lineSpec struct {
	dir  lineDir
	x, y int
}

type moveDir int

const (
	forward moveDir = iota
	backward
)

// Walk performs the global loop check described in the package doc: it
// discovers every clue vertex and every Line edge, then follows the loop
// from an arbitrary Line edge back to itself, removing each vertex and
// edge it consumes as it goes.
func Walk(state *puzzle.PuzzleState) (Status, error) {
	w := &walker{state: state}
	w.discoverVertices()
	w.discoverLines()
	if w.start == nil {
		// No Line edge exists anywhere. That is a valid SOLVED "no loop"
		// state when no clue vertex needed one; otherwise propagation
		// simply hasn't placed anything yet.
		if len(w.vertices) == 0 {
			return Solved, nil
		}

		return Unsolved, nil
	}

	w.direction = forward
	for {
		status, err := w.step()
		if err != nil {
			return Invalid, err
		}
		if status != nil {
			return *status, nil
		}
		if w.current == *w.start {
			break
		}
	}

	if len(w.vertices) == 0 && len(w.lines) == 0 {
		return Solved, nil
	}

	return Invalid, nil
}

type walker struct {
	state     *puzzle.PuzzleState
	vertices  map[[2]int]bool
	lines     map[lineSpec]bool
	start     *lineSpec
	current   lineSpec
	direction moveDir
}

func (w *walker) discoverVertices() {
	w.vertices = make(map[[2]int]bool)
	width, height := w.state.Width(), w.state.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if t, _ := w.state.GetTile(x, y); t != puzzle.Any {
				w.vertices[[2]int{x, y}] = true
			}
		}
	}
}

func (w *walker) discoverLines() {
	w.lines = make(map[lineSpec]bool)
	w.start = nil
	width, height := w.state.Width(), w.state.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width-1; x++ {
			if s, _ := w.state.GetHLine(x, y); s == puzzle.Line {
				spec := lineSpec{horizontal, x, y}
				w.lines[spec] = true
				if w.start == nil {
					cp := spec
					w.start = &cp
				}
			}
		}
	}
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			if s, _ := w.state.GetVLine(x, y); s == puzzle.Line {
				spec := lineSpec{vertical, x, y}
				w.lines[spec] = true
				if w.start == nil {
					cp := spec
					w.start = &cp
				}
			}
		}
	}

	if w.start != nil {
		w.current = *w.start
	}
}

// step advances the walk by one vertex. It returns a non-nil Status when
// the walk should stop immediately (an illegal vertex, or a dead end with
// edges/vertices still unconsumed).
func (w *walker) step() (*Status, error) {
	tx, ty, nextLine, ok := w.nextPosition()
	if !ok {
		s := Unsolved

		return &s, nil
	}

	legal, err := VertexLegal(vertex.New(w.state, tx, ty))
	if err != nil {
		return nil, err
	}
	if !legal {
		s := Invalid

		return &s, nil
	}

	delete(w.vertices, [2]int{tx, ty})
	delete(w.lines, w.current)

	if nextLine.x < w.current.x || nextLine.y < w.current.y {
		w.direction = backward
	} else {
		w.direction = forward
	}
	w.current = nextLine

	return nil, nil
}

// nextPosition finds the vertex the walk is about to step onto and the one
// remaining Line edge leaving it (other than the edge just arrived on). A
// false ok means the walk cannot continue: either that vertex has no other
// Line edge (a dead end) or it has more than one (ambiguous, can't happen
// in a legal loop but guarded against here rather than assumed away).
func (w *walker) nextPosition() (x, y int, next lineSpec, ok bool) {
	tx, ty := w.nextVertex()
	adjacent := w.enumerateLines(tx, ty)
	delete(adjacent, w.current)

	if len(adjacent) != 1 {
		return 0, 0, lineSpec{}, false
	}
	for spec := range adjacent {
		return tx, ty, spec, true
	}

	return 0, 0, lineSpec{}, false
}

func (w *walker) nextVertex() (int, int) {
	if w.direction == backward {
		return w.current.x, w.current.y
	}
	if w.current.dir == horizontal {
		return w.current.x + 1, w.current.y
	}

	return w.current.x, w.current.y + 1
}

func (w *walker) enumerateLines(x, y int) map[lineSpec]bool {
	out := make(map[lineSpec]bool, 4)
	if s, _ := w.state.GetHLine(x, y); s == puzzle.Line {
		out[lineSpec{horizontal, x, y}] = true
	}
	if s, _ := w.state.GetHLine(x-1, y); s == puzzle.Line {
		out[lineSpec{horizontal, x - 1, y}] = true
	}
	if s, _ := w.state.GetVLine(x, y); s == puzzle.Line {
		out[lineSpec{vertical, x, y}] = true
	}
	if s, _ := w.state.GetVLine(x, y-1); s == puzzle.Line {
		out[lineSpec{vertical, x, y - 1}] = true
	}

	return out
}
