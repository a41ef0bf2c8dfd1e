package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/game"
	"github.com/KirkDiggler/board-bot-discord/internal/events"
)

type testListener struct {
	id       string
	priority int
	handler  func(e *events.Event) error
}

func (l *testListener) HandleEvent(_ context.Context, e *events.Event) error { return l.handler(e) }
func (l *testListener) Priority() int                                        { return l.priority }
func (l *testListener) ID() string                                           { return l.id }

func recording(id string, priority int, order *[]string) *testListener {
	return &testListener{
		id:       id,
		priority: priority,
		handler: func(*events.Event) error {
			*order = append(*order, id)
			return nil
		},
	}
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.EventTypeGameFinished, recording("low", 300, &order))
	bus.Subscribe(events.EventTypeGameFinished, recording("high", 100, &order))
	bus.Subscribe(events.EventTypeGameFinished, recording("medium", 200, &order))
	bus.Subscribe(events.EventTypeGameCreated, recording("other", 0, &order))

	err := bus.Emit(context.Background(), &events.Event{
		Type:   events.EventTypeGameFinished,
		GameID: "game-1",
		Result: &game.Result{GameID: "game-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "medium", "low"}, order)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.EventTypeGameCreated, &testListener{
		id:       "gate",
		priority: 1,
		handler: func(e *events.Event) error {
			order = append(order, "gate")
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeGameCreated, recording("after", 2, &order))

	require.NoError(t, bus.Emit(context.Background(), &events.Event{Type: events.EventTypeGameCreated}))
	assert.Equal(t, []string{"gate"}, order)
}

func TestEventBus_ListenerErrorStops(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.EventTypeGameFinished, &testListener{
		id:       "saver",
		priority: 1,
		handler:  func(*events.Event) error { return errors.New("store down") },
	})
	bus.Subscribe(events.EventTypeGameFinished, recording("after", 2, &order))

	err := bus.Emit(context.Background(), &events.Event{Type: events.EventTypeGameFinished})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener saver failed: store down")
	assert.Empty(t, order)
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	var order []string

	bus.Subscribe(events.EventTypeGameCreated, recording("a", 1, &order))
	bus.Subscribe(events.EventTypeGameCreated, recording("b", 2, &order))
	bus.Subscribe(events.EventTypeGameCreated, recording("c", 3, &order))
	bus.Unsubscribe(events.EventTypeGameCreated, "b")
	bus.Unsubscribe(events.EventTypeGameCreated, "missing")

	require.NoError(t, bus.Emit(context.Background(), &events.Event{Type: events.EventTypeGameCreated}))
	assert.Equal(t, []string{"a", "c"}, order)

	bus.Clear()
	order = nil
	require.NoError(t, bus.Emit(context.Background(), &events.Event{Type: events.EventTypeGameCreated}))
	assert.Empty(t, order)
}
