package event

import (
	"sync"

	"github.com/dlxed/dlxed/internal/logger"
)

// Handler is the function signature for subscribers. Returning true marks
// the event as consumed; the manager currently ignores the result.
type Handler func(e Event) bool

// Manager handles event subscriptions and synchronous dispatch.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates an empty event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event to all handlers registered for its type.
// Handlers run synchronously on the calling goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.Debugf("event: dispatching type %v to %d handler(s)", eventType, len(handlers))

	// Copy so a handler subscribing during dispatch cannot mutate the slice
	// we are iterating.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	ev := Event{Type: eventType, Data: data}
	for _, handler := range handlersCopy {
		handler(ev)
	}
}
