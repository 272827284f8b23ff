package services

import "sync"

// OrderEvent is published whenever a guarded operation or override
// changes an order.
type OrderEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// EventHub fans order-change events out to subscribed views. Each
// subscriber owns a channel and an unsubscribe function; teardown is
// explicit so a closed dashboard tab never leaks a subscription.
// Sends are non-blocking: a subscriber that stops draining misses
// events rather than stalling publishers.
type EventHub struct {
	mu          sync.Mutex
	subscribers map[int]chan OrderEvent
	nextID      int
}

var hubInstance = NewEventHub()

// NewEventHub creates a new event hub
func NewEventHub() *EventHub {
	return &EventHub{
		subscribers: make(map[int]chan OrderEvent),
	}
}

// GetEventHub returns the shared event hub instance
func GetEventHub() *EventHub {
	return hubInstance
}

// SetEventHub sets the shared event hub (primarily for testing)
func SetEventHub(h *EventHub) {
	hubInstance = h
}

// Subscribe registers a new subscriber. The returned function removes
// the subscription and closes the channel; it is safe to call more
// than once.
func (h *EventHub) Subscribe() (<-chan OrderEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan OrderEvent, 16)
	h.subscribers[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subscribers[id]; ok {
				delete(h.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, unsubscribe
}

// Publish delivers the event to every current subscriber.
func (h *EventHub) Publish(event OrderEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is not draining; drop rather than block.
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (h *EventHub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
