package models

// TokenPair is the bearer token pair issued by the Foyer API on login and
// signup. Both strings are opaque to the client; the access token is attached
// to authenticated requests, the refresh token is held for future renewal.
//
// Durable storage treats the pair as a unit: both tokens are written together
// and cleared together, never one without the other.
type TokenPair struct {
	// AccessToken is the short-lived bearer token sent on every
	// authenticated request.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token accepted by /auth/refresh.
	RefreshToken string `json:"refresh_token"`

	// TokenType is the scheme reported by the API, normally "bearer".
	TokenType string `json:"token_type,omitempty"`
}

// Complete reports whether both tokens of the pair are present.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}
