package session

import "context"

// Persisted is the durable projection of the session: the three values the
// client keeps across restarts. User is the raw profile JSON as received
// from the backend; it is opaque to this package's state machine and only
// decoded for display.
type Persisted struct {
	Token string
	Role  string
	User  []byte
}

// Store persists the session under three logical keys.
//
// Contract:
//   - Load never fails because of missing or malformed data; absent keys
//     map to zero values and an unparsable profile blob is dropped. Only an
//     unusable storage medium returns an error.
//   - Save writes all three keys atomically; SaveRole updates the role
//     alone without disturbing the others.
//   - Clear removes all three keys atomically: a subsequent Load can never
//     observe a partial clear.
//   - Save, SaveRole and Clear report storage failures to the caller.
type Store interface {
	Load(ctx context.Context) (Persisted, error)
	Save(ctx context.Context, p Persisted) error
	SaveRole(ctx context.Context, role string) error
	Clear(ctx context.Context) error
}
