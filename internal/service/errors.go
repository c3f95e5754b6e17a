package service

import (
	"errors"

	"github.com/foyerhq/foyer-client/internal/adapter"
)

var (
	// ErrLoginFailed wraps any error that prevented a login from
	// completing. The session is left untouched when it is returned.
	ErrLoginFailed = errors.New("login failed")

	// ErrSignupFailed wraps any error that prevented a signup from
	// completing. The session is left untouched when it is returned.
	ErrSignupFailed = errors.New("signup failed")
)

// Fallback display texts used when the API error payload carries no message.
const (
	loginFallbackMessage  = "Invalid email or password"
	signupFallbackMessage = "Signup failed. Please try again."
)

// UserMessage turns a login/signup error into the single human-readable
// string the UI shows. The API's own message wins when present; otherwise a
// generic text matching the failed flow is used.
func UserMessage(err error) string {
	if msg := adapter.UserMessage(err); msg != "" {
		return msg
	}
	if errors.Is(err, ErrSignupFailed) {
		return signupFallbackMessage
	}
	return loginFallbackMessage
}
