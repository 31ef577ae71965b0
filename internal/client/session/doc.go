// Package session owns the client's authentication state.
//
// # Overview
//
// Three cooperating pieces:
//
//  1. Store — durable persistence of exactly three values: the auth token,
//     the active role, and the cached user profile JSON. Backed by a local
//     SQLite key/value table (see SQLiteStore, OpenDatabase).
//  2. Controller — the single in-memory authority over
//     {loading, token, role}. It is constructed once per process,
//     initialized from the Store at startup, and is the only component
//     allowed to mutate session state. Every committed change is delivered
//     synchronously to subscribers.
//  3. Select — a pure mapping from State to the Screen the view layer
//     should mount.
//
// # State machine
//
// States are Loading, Unauthenticated, and AuthenticatedAs(buyer|seller).
// The process starts in Loading and leaves it exactly once, when Init
// completes; Loading is never re-entered. Login, Logout and SwitchRole are
// the only transitions afterwards, and they are serialized: two concurrent
// calls can never interleave their read-modify-write.
//
// # Durability discipline
//
// Mutations persist first and commit in-memory state only after the write
// succeeded, so durable and in-memory truth cannot diverge. The one
// deliberate exception is Logout: the local session is cleared even when
// the remote invalidation or the durable clear fails, because a stale
// token left behind is worse than a dangling server session.
//
// # Error Handling
//
// Sentinel errors are matched with errors.Is: ErrNotReady (mutation before
// Init finished), ErrNotAuthenticated, ErrUnknownRole, ErrPersistence
// (durable write failed; in-memory state was not advanced).
package session
