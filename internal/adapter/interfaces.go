package adapter

import (
	"context"

	"github.com/foyerhq/foyer-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// AuthAPI is the typed contract of the Foyer authentication endpoints. The
// session manager is its only consumer; tokens are passed explicitly per
// call so the adapter itself stays stateless.
type AuthAPI interface {
	// Login exchanges credentials for an identity plus a fresh token pair.
	// A rejected login surfaces as an *APIError carrying the server's
	// message.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Signup registers a new account. On success the account is logged in
	// immediately: the response carries the identity and a token pair, with
	// email verification still pending.
	Signup(ctx context.Context, data models.SignupData) (models.AuthResponse, error)

	// Logout invalidates the session server-side. Callers are free to
	// ignore the outcome; local teardown must not depend on it.
	Logout(ctx context.Context, accessToken string) error

	// CurrentUser fetches the authoritative identity for the bearer token.
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)

	// RefreshTokens exchanges a refresh token for a new pair. The session
	// manager does not drive renewal yet; the endpoint is exposed for the
	// day it does.
	RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error)
}

// HouseholdAPI is the typed contract of the household directory endpoints.
type HouseholdAPI interface {
	// GetAll returns the ordered list of households the token's user
	// belongs to.
	GetAll(ctx context.Context, accessToken string) ([]models.Household, error)
}
