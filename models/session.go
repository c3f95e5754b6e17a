package models

// IdentityOrigin records where the session's identity came from. It
// distinguishes a server-confirmed identity from one reconstructed out of a
// decoded token while the API was unreachable.
type IdentityOrigin int

const (
	// OriginNone means no identity is held (unauthenticated).
	OriginNone IdentityOrigin = iota

	// OriginServer means the identity was confirmed by the API
	// (login, signup, or a successful /auth/me fetch).
	OriginServer

	// OriginToken means the identity was derived from decoded token claims
	// because the authoritative identity fetch failed. The session is kept
	// alive on these stale claims rather than evicting the user during an
	// outage.
	OriginToken
)

// Session is the process-wide record of the current authenticated identity
// and its loading status. It is written exclusively by the session manager;
// every other component receives read-only snapshots.
type Session struct {
	// User is the current identity, nil when nobody is logged in.
	User *User

	// Origin tells whether User came from the server or from decoded
	// token claims.
	Origin IdentityOrigin

	// Loading is true only from boot until the initial rehydration pass
	// resolves. The route guard must not redirect while it is set.
	Loading bool
}

// IsAuthenticated reports whether a user is logged in.
func (s Session) IsAuthenticated() bool {
	return s.User != nil
}
