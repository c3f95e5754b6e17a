package models

// Credentials is the login request body for /auth/login.
type Credentials struct {
	// Email is the account login identifier.
	Email string `json:"email"`

	// Password is the plaintext password, sent only over TLS and never
	// stored on the client.
	Password string `json:"password"`
}

// SignupData is the registration request body for /auth/signup.
type SignupData struct {
	// Email is the address the new account will be keyed by.
	Email string `json:"email"`

	// Password is the chosen plaintext password.
	Password string `json:"password"`

	// FullName is the optional display name.
	FullName string `json:"full_name,omitempty"`
}
