package services

import "errors"

// Client-error taxonomy. Handlers map these onto HTTP status codes;
// anything not matching is treated as an infrastructure failure.
var (
	// ErrNotFound means an identifier resolved to no stored or registered entity
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference means a required foreign key does not resolve
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrInvalidPriority means a task priority outside {1,2,3} was supplied
	ErrInvalidPriority = errors.New("priority must be 1 (high), 2 (medium) or 3 (low)")

	// ErrNotReady means a simulated request's task list was read before processing finished
	ErrNotReady = errors.New("request not ready yet")
)
