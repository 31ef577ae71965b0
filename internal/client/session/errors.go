package session

import "errors"

var (
	// ErrNotReady means a mutation arrived before the startup load finished.
	ErrNotReady = errors.New("session not initialized")

	// ErrNotAuthenticated means the operation requires an active login.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUnknownRole means a role outside {buyer, seller}.
	ErrUnknownRole = errors.New("unknown role")

	// ErrPersistence means a durable write or clear failed. In-memory state
	// is never advanced past what was durably written.
	ErrPersistence = errors.New("session persistence failed")
)
