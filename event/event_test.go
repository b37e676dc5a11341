package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/masyu/event"
	"github.com/katalvlaran/masyu/puzzle"
)

func TestBus_FansOutToAllSubscribers(t *testing.T) {
	var a, b []event.Event
	bus := event.NewBus(
		event.PublisherFunc(func(e event.Event) { a = append(a, e) }),
		event.PublisherFunc(func(e event.Event) { b = append(b, e) }),
	)

	e := event.Event{Kind: puzzle.HLineKind, X: 1, Y: 2, State: puzzle.Line}
	bus.Publish(e)

	require.Equal(t, []event.Event{e}, a)
	require.Equal(t, []event.Event{e}, b)
}

func TestBus_SubscribeAfterConstruction(t *testing.T) {
	bus := event.NewBus()
	var got []event.Event
	bus.Subscribe(event.PublisherFunc(func(e event.Event) { got = append(got, e) }))

	bus.Publish(event.Event{Kind: puzzle.VLineKind, X: 0, Y: 0, State: puzzle.Empty})
	require.Len(t, got, 1)
}

func TestNop_DiscardsEvents(t *testing.T) {
	require.NotPanics(t, func() {
		event.Nop.Publish(event.Event{})
	})
}
