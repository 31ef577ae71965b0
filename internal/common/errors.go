// Package common holds small helpers and sentinel errors shared across the
// bookstall client layers. Callers match the sentinels with errors.Is.
package common

import "errors"

var (
	// ErrInvalidToken marks a cached credential that does not parse as a
	// JWT. Such tokens are kept locally; the backend is the judge of
	// whether they still authenticate.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired marks a cached JWT whose exp claim is in the past.
	// A session behind such a token is discarded at startup.
	ErrTokenExpired = errors.New("token expired")
)
