package models

// AuthResponse is the body returned by /auth/login and /auth/signup: the
// authenticated identity together with the freshly issued token pair.
type AuthResponse struct {
	// User is the server-confirmed identity of the account.
	User User `json:"user"`

	// Tokens is the credential pair to persist for the session.
	Tokens TokenPair `json:"tokens"`
}
