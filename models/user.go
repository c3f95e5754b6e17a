package models

import "time"

// User is the identity record returned by the Foyer API for an authenticated
// account. It is the authoritative form of "who is logged in": the session
// manager stores it verbatim after a successful login, signup, or /auth/me
// fetch. Sensitive credential material never appears here.
type User struct {
	// ID is the account identifier issued by the API (a UUID string).
	ID string `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// FullName is the optional display name chosen at signup.
	FullName string `json:"full_name,omitempty"`

	// EmailConfirmedAt is the moment the account's email address was
	// verified. Nil means verification is still pending.
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the last account modification timestamp.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// EmailConfirmed reports whether the account's email address has been
// verified. Freshly signed-up accounts return false until the user follows
// the verification link.
func (u User) EmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// Claim is the partial identity extracted from an access token's payload
// segment without signature verification. It is trusted only as a fallback
// when the authoritative identity fetch fails; it is recomputed on demand and
// never persisted.
type Claim struct {
	// SubjectID is the "sub" claim: the account UUID the token was issued for.
	SubjectID string

	// Email is the "email" claim embedded by the token issuer.
	Email string
}

// User converts the claim into a fallback identity record.
func (c Claim) User() User {
	return User{ID: c.SubjectID, Email: c.Email}
}
