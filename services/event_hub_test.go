package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventHubPublishSubscribe(t *testing.T) {
	hub := NewEventHub()

	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Publish(OrderEvent{OrderID: "order-1", Status: "quoted"})

	select {
	case event := <-events:
		assert.Equal(t, "order-1", event.OrderID)
		assert.Equal(t, "quoted", event.Status)
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for event")
	}
}

func TestEventHubUnsubscribe(t *testing.T) {
	hub := NewEventHub()

	events, unsubscribe := hub.Subscribe()
	unsubscribe()

	assert.Equal(t, 0, hub.SubscriberCount())

	// The channel closes on unsubscribe so SSE loops terminate.
	_, ok := <-events
	assert.False(t, ok)

	// Calling twice is safe.
	unsubscribe()
}

func TestEventHubFanOut(t *testing.T) {
	hub := NewEventHub()

	first, stopFirst := hub.Subscribe()
	second, stopSecond := hub.Subscribe()
	defer stopFirst()
	defer stopSecond()

	hub.Publish(OrderEvent{OrderID: "order-2", Status: "buying"})

	for _, ch := range []<-chan OrderEvent{first, second} {
		select {
		case event := <-ch:
			assert.Equal(t, "order-2", event.OrderID)
		case <-time.After(time.Second):
			t.Fatal("Timed out waiting for event")
		}
	}
}

func TestEventHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewEventHub()

	_, stopSlow := hub.Subscribe()
	defer stopSlow()

	// Fill the slow subscriber's buffer and keep going; Publish must
	// never stall.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(OrderEvent{OrderID: "order-3", Status: "buying"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
