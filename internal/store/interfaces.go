package store

import (
	"context"

	"github.com/foyerhq/foyer-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// TokenRepository is the durable home of the session's credential pair.
// The session manager is its only writer; everything else treats stored
// tokens as read-only.
type TokenRepository interface {
	// SaveTokens persists both tokens of the pair atomically.
	// Returns ErrIncompleteTokenPair when either token is empty.
	SaveTokens(ctx context.Context, pair models.TokenPair) error

	// LoadTokens returns the stored pair, or ErrTokensNotFound when the
	// store holds no complete pair.
	LoadTokens(ctx context.Context) (models.TokenPair, error)

	// ClearTokens removes both tokens. Idempotent: clearing an empty store
	// is not an error.
	ClearTokens(ctx context.Context) error
}

var _ TokenRepository = (*Store)(nil)
