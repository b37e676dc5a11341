package event

import "github.com/katalvlaran/masyu/puzzle"

// Event describes one edge mutation: which edge grid, which coordinate,
// and the line state it was just set to.
type Event struct {
	Kind  puzzle.EdgeKind
	X, Y  int
	State puzzle.LineState
}

// Publisher is anything that can receive Events. Subscribers must return
// quickly — Publish is called synchronously from inside the solving loop,
// so a slow subscriber slows the solve proportionally. A host that wants
// to animate should buffer or pace inside its own handler.
type Publisher interface {
	Publish(e Event)
}

// PublisherFunc adapts a plain function to the Publisher interface.
type PublisherFunc func(e Event)

// Publish calls f(e).
func (f PublisherFunc) Publish(e Event) { f(e) }

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}

// Nop is the zero-cost default Publisher: it discards every event.
var Nop Publisher = nopPublisher{}

// Bus fans a single Publish call out to every subscriber, in subscription
// order, the way the teacher's multi-hook traversal options support more
// than one observer without the core knowing how many there are.
type Bus struct {
	subscribers []Publisher
}

// NewBus builds a Bus with the given initial subscribers.
func NewBus(subscribers ...Publisher) *Bus {
	return &Bus{subscribers: append([]Publisher(nil), subscribers...)}
}

// Subscribe adds p to the fan-out list.
func (b *Bus) Subscribe(p Publisher) {
	b.subscribers = append(b.subscribers, p)
}

// Publish forwards e to every subscriber.
func (b *Bus) Publish(e Event) {
	for _, sub := range b.subscribers {
		sub.Publish(e)
	}
}
