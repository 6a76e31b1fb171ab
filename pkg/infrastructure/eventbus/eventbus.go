// Package eventbus provides the in-process implementation of the domain
// event bus. It dispatches synchronously on Publish; handlers that must not
// block the caller (notification delivery) spin up their own goroutine.
package eventbus

import (
	"sync"

	"github.com/miroma-app/miroma/pkg/domain"
)

// InProcessEventBus is a synchronous in-process event bus.
type InProcessEventBus struct {
	handlers    map[domain.EventName][]domain.EventHandler
	allHandlers []domain.EventHandler
	mu          sync.RWMutex
	closed      bool
}

// New creates a new in-process event bus.
func New() *InProcessEventBus {
	return &InProcessEventBus{
		handlers: make(map[domain.EventName][]domain.EventHandler),
	}
}

// Publish dispatches an event to all matching handlers. Handlers for the
// specific event name run first, then global handlers.
func (b *InProcessEventBus) Publish(event domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for _, handler := range b.handlers[event.Name()] {
		handler(event)
	}
	for _, handler := range b.allHandlers {
		handler(event)
	}
}

// Subscribe registers a handler for a specific event name.
func (b *InProcessEventBus) Subscribe(name domain.EventName, handler domain.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

// SubscribeAll registers a handler that receives every event.
func (b *InProcessEventBus) SubscribeAll(handler domain.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.allHandlers = append(b.allHandlers, handler)
}

// Close marks the bus as closed. No more events will be dispatched.
func (b *InProcessEventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
}

// Verify interface compliance at compile time.
var _ domain.EventBus = (*InProcessEventBus)(nil)
