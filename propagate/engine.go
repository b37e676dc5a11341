package propagate

import (
	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/puzzle"
	"github.com/katalvlaran/masyu/rules"
	"github.com/katalvlaran/masyu/validate"
	"github.com/katalvlaran/masyu/vertex"
)

// Engine runs rules.All over a puzzle.PuzzleState's dirty vertices until
// none are left.
type Engine struct {
	state    *puzzle.PuzzleState
	observer event.Publisher
	dirty    map[vertex.Coord]struct{}
	order    []vertex.Coord
}

// New builds an Engine over state. If observer is nil, event.Nop is used
// and mutations are not reported anywhere.
func New(state *puzzle.PuzzleState, observer event.Publisher) *Engine {
	if observer == nil {
		observer = event.Nop
	}
	state.SetNotifier(func(kind puzzle.EdgeKind, x, y int, v puzzle.LineState) {
		observer.Publish(event.Event{Kind: kind, X: x, Y: y, State: v})
	})

	return &Engine{
		state:    state,
		observer: observer,
		dirty:    make(map[vertex.Coord]struct{}),
	}
}

// Seed marks every tile whose type is not Any, and both endpoints of every
// edge whose state is not LineAny, as dirty. This is the engine's initial
// load: a freshly-constructed puzzle has no decided edges yet, so only the
// clue tiles themselves start the first round.
func (e *Engine) Seed() {
	w, h := e.state.Width(), e.state.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if t, _ := e.state.GetTile(x, y); t != puzzle.Any {
				e.markDirty(vertex.Coord{X: x, Y: y})
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			if s, _ := e.state.GetHLine(x, y); s != puzzle.LineAny {
				e.markDirty(vertex.Coord{X: x, Y: y})
				e.markDirty(vertex.Coord{X: x + 1, Y: y})
			}
		}
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if s, _ := e.state.GetVLine(x, y); s != puzzle.LineAny {
				e.markDirty(vertex.Coord{X: x, Y: y})
				e.markDirty(vertex.Coord{X: x, Y: y + 1})
			}
		}
	}
}

// MarkDirty flags every coordinate in coords for re-checking on the next
// Run. Used by the
// search driver after placing a guessed line.
func (e *Engine) MarkDirty(coords vertex.CoordSet) {
	for c := range coords {
		e.markDirty(c)
	}
}

func (e *Engine) markDirty(c vertex.Coord) {
	if _, ok := e.dirty[c]; ok {
		return
	}
	e.dirty[c] = struct{}{}
	e.order = append(e.order, c)
}

// Run drains the dirty set: for each coordinate, it runs rules.All in
// order and stops at the first rule that produced a change, re-marking the
// coordinate itself dirty alongside whatever the rule reported. A
// coordinate with no undecided edges left, and no tile clue, is skipped —
// there is nothing left for any rule to learn there.
//
// Run stops early and returns false the moment a rule's edit leaves some
// vertex unable to ever satisfy its tile, rather than waiting for the
// eventual loop walk to notice. The dirty queue is left non-empty in that
// case; the caller is expected to backtrack, not resume Run.
func (e *Engine) Run() (bool, error) {
	for len(e.order) > 0 {
		c := e.dequeue()
		v := vertex.New(e.state, c.X, c.Y)
		if v.IsFilled() && v.Type() == puzzle.Any {
			continue
		}

		for _, rule := range rules.All {
			updates := rule.Apply(v)
			if len(updates) == 0 {
				continue
			}

			ok, err := e.checkLegal(c)
			if !ok || err != nil {
				return false, err
			}
			for u := range updates {
				e.markDirty(u)
				ok, err := e.checkLegal(u)
				if !ok || err != nil {
					return false, err
				}
			}
			e.markDirty(c)

			break
		}
	}

	return true, nil
}

func (e *Engine) checkLegal(c vertex.Coord) (bool, error) {
	return validate.VertexLegal(vertex.New(e.state, c.X, c.Y))
}

func (e *Engine) dequeue() vertex.Coord {
	c := e.order[0]
	e.order = e.order[1:]
	delete(e.dirty, c)

	return c
}
