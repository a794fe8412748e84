package intent

import (
	"fmt"
	"sync"
)

// Registry holds handlers in registration order.
// It provides thread-safe registration and first-match lookup.
type Registry struct {
	order    []Handler
	handlers map[string]Handler
	mu       sync.RWMutex
}

// NewRegistry creates a new empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register appends a handler to the registry.
// Returns an error if a handler with the same ID already exists.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[h.ID()]; exists {
		return fmt.Errorf("handler %s already registered", h.ID())
	}

	r.handlers[h.ID()] = h
	r.order = append(r.order, h)
	return nil
}

// Unregister removes a handler from the registry.
// Returns an error if the handler doesn't exist.
func (r *Registry) Unregister(handlerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[handlerID]; !exists {
		return fmt.Errorf("handler %s: %w", handlerID, ErrHandlerNotFound)
	}

	delete(r.handlers, handlerID)
	order := make([]Handler, 0, len(r.order)-1)
	for _, h := range r.order {
		if h.ID() != handlerID {
			order = append(order, h)
		}
	}
	r.order = order
	return nil
}

// Get returns a handler by ID.
// Returns nil if the handler doesn't exist.
func (r *Registry) Get(handlerID string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.handlers[handlerID]
}

// Match returns the first enabled handler, in registration order, that can
// handle the turn. Returns ErrNoHandler if none can.
func (r *Registry) Match(in *Input) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.order {
		if !h.Config().Enabled {
			continue
		}
		if h.CanHandle(in) {
			return h, nil
		}
	}
	return nil, ErrNoHandler
}

// GetAll returns all registered handlers in registration order.
func (r *Registry) GetAll() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Handler(nil), r.order...)
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
