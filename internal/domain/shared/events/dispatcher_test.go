package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventDispatcher_PublishAndDeliver(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())

	var mu sync.Mutex
	var received []string
	handler := NewSimpleEventHandler("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		received = append(received, e.GetAggregateID())
		mu.Unlock()
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	err := d.Publish(BaseEvent{
		AggregateID: "tk_1",
		EventType:   "ticket.created",
		OccurredAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, d.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"tk_1"}, received)
}

func TestInMemoryEventDispatcher_PublishWhenStopped(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)

	err := d.Publish(BaseEvent{EventType: "ticket.created"})
	assert.Error(t, err)
}

func TestInMemoryEventDispatcher_HandlerErrorDoesNotPropagate(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())

	handler := NewSimpleEventHandler("ticket.updated", func(e DomainEvent) error {
		return fmt.Errorf("transport down")
	})
	require.NoError(t, d.Subscribe("ticket.updated", handler))

	// Publish succeeds even though the handler will fail.
	err := d.Publish(BaseEvent{AggregateID: "tk_2", EventType: "ticket.updated", OccurredAt: time.Now().UTC()})
	assert.NoError(t, err)

	require.NoError(t, d.Stop())
}

func TestInMemoryEventDispatcher_UnrelatedEventTypeIgnored(t *testing.T) {
	d := NewInMemoryEventDispatcher(10)
	require.NoError(t, d.Start())

	var mu sync.Mutex
	called := 0
	handler := NewSimpleEventHandler("ticket.created", func(e DomainEvent) error {
		mu.Lock()
		called++
		mu.Unlock()
		return nil
	})
	require.NoError(t, d.Subscribe("ticket.created", handler))

	require.NoError(t, d.Publish(BaseEvent{EventType: "ticket.updated"}))
	require.NoError(t, d.Stop())

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, called)
}
