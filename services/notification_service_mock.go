package services

import "sync"

// NotifiedEvent records one dispatched order notification.
type NotifiedEvent struct {
	UserID    string
	OrderID   string
	EventType string
}

// MockNotifier records notifications for test assertions.
type MockNotifier struct {
	events     []NotifiedEvent
	broadcasts [][2]string
	mu         sync.Mutex
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SetAsMockForTesting sets this mock as the global notifier instance for testing
func (m *MockNotifier) SetAsMockForTesting() {
	SetNotifier(m)
}

// NotifyOrderEvent records the event
func (m *MockNotifier) NotifyOrderEvent(userID, orderID, eventType string) {
	m.mu.Lock()
	m.events = append(m.events, NotifiedEvent{UserID: userID, OrderID: orderID, EventType: eventType})
	m.mu.Unlock()
}

// Broadcast records the broadcast
func (m *MockNotifier) Broadcast(title, body string) {
	m.mu.Lock()
	m.broadcasts = append(m.broadcasts, [2]string{title, body})
	m.mu.Unlock()
}

// Events returns the recorded order events
func (m *MockNotifier) Events() []NotifiedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]NotifiedEvent(nil), m.events...)
}

// Broadcasts returns the recorded broadcasts
func (m *MockNotifier) Broadcasts() [][2]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][2]string(nil), m.broadcasts...)
}

// Clear resets the recorded notifications
func (m *MockNotifier) Clear() {
	m.mu.Lock()
	m.events = nil
	m.broadcasts = nil
	m.mu.Unlock()
}
