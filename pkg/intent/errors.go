package intent

import "errors"

var (
	// ErrNoHandler indicates that no enabled handler matched the turn.
	ErrNoHandler = errors.New("no handler matched the request")

	// ErrHandlerNotFound indicates that a requested handler doesn't exist in the registry.
	ErrHandlerNotFound = errors.New("handler not found in registry")
)
