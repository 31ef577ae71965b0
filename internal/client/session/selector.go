package session

// Screen identifies which of the mutually exclusive view trees the client
// should mount for a given State.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenWelcome
	ScreenBuyer
	ScreenSeller
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenWelcome:
		return "welcome"
	case ScreenBuyer:
		return "buyer"
	case ScreenSeller:
		return "seller"
	default:
		return "unknown"
	}
}

// Select maps a State to exactly one Screen. It is pure: no I/O, no hidden
// state, equal inputs always yield equal outputs.
//
// While Loading is true the token and role are not trustworthy yet, so
// ScreenLoading wins regardless of their contents. A token with an unknown
// role falls back to ScreenWelcome.
func Select(s State) Screen {
	switch {
	case s.Loading:
		return ScreenLoading
	case s.Token == "":
		return ScreenWelcome
	case s.Role == RoleBuyer:
		return ScreenBuyer
	case s.Role == RoleSeller:
		return ScreenSeller
	default:
		return ScreenWelcome
	}
}
