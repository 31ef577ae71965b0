// Package api contains the HTTP client for the bookstore backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (the Client interface) covering the
//     backend's REST surface: auth, catalog, cart, and orders.
//  2. A concrete JSON/HTTP implementation (HTTPClient) that attaches the
//     bearer token from a TokenSource, tags every request with an
//     X-Request-ID, and maps transport and status failures to sentinel
//     errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable (could not reach the server),
// ErrUnauthorized (401), ErrNotFound (404). Other non-2xx responses are
// returned as *APIError carrying the status code and the backend's message
// verbatim, so the view layer can show it to the user unchanged.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
