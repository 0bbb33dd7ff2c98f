package core

// AuthStatus represents the user's music access authorization status.
type AuthStatus string

const (
	AuthNotDetermined AuthStatus = "not-determined"
	AuthAuthorized    AuthStatus = "authorized"
	AuthDenied        AuthStatus = "denied"
	AuthRestricted    AuthStatus = "restricted"

	// AuthUnknown covers values persisted by a newer version of the app.
	AuthUnknown AuthStatus = "unknown"
)

// ParseAuthStatus maps a stored status string onto the known set.
// Anything unrecognized parses as AuthUnknown rather than an error so
// that downgrades never break the read path.
func ParseAuthStatus(s string) AuthStatus {
	switch AuthStatus(s) {
	case AuthNotDetermined, AuthAuthorized, AuthDenied, AuthRestricted:
		return AuthStatus(s)
	default:
		return AuthUnknown
	}
}

// String returns the wire form of the status.
func (s AuthStatus) String() string {
	return string(s)
}

// Granted returns true if playback of protected content is allowed.
func (s AuthStatus) Granted() bool {
	return s == AuthAuthorized
}

// Message returns the user-facing banner for the status. Authorized
// maps to the empty string; every other status maps to a fixed string.
func (s AuthStatus) Message() string {
	switch s {
	case AuthAuthorized:
		return ""
	case AuthNotDetermined:
		return "Music access hasn't been decided yet."
	case AuthDenied:
		return "Music access was denied."
	case AuthRestricted:
		return "Music access is restricted on this device."
	default:
		return "Music access status is unrecognized."
	}
}
