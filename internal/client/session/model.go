package session

import "fmt"

// Role is the active operating mode of the session. It is meaningful only
// while a token is present.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ParseRole validates a raw role string against the two known roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// State is the controller's published session state.
//
// Invariants:
//   - Loading is true only until the single startup load completes and is
//     never true again for the life of the process.
//   - Role is non-empty if and only if Token is non-empty.
type State struct {
	Loading bool
	Token   string
	Role    Role
}

// Authenticated reports whether a token is present. Not meaningful while
// Loading is true.
func (s State) Authenticated() bool {
	return s.Token != ""
}
