package store

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/foyerhq/foyer-client/models"
)

var (
	accessTokenKey  = []byte("access_token")
	refreshTokenKey = []byte("refresh_token")
)

// SaveTokens persists the credential pair. Both tokens are written inside a
// single transaction so durable storage never holds one without the other.
//
// Returns ErrIncompleteTokenPair without touching storage when either token
// is empty.
func (s *Store) SaveTokens(ctx context.Context, pair models.TokenPair) error {
	if !pair.Complete() {
		return ErrIncompleteTokenPair
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Put(accessTokenKey, []byte(pair.AccessToken)); err != nil {
			return fmt.Errorf("save access token: %w", err)
		}
		if err := bucket.Put(refreshTokenKey, []byte(pair.RefreshToken)); err != nil {
			return fmt.Errorf("save refresh token: %w", err)
		}

		return nil
	})
}

// LoadTokens returns the stored credential pair.
//
// A pair missing either token (including a partial write left behind by an
// older client) is reported as ErrTokensNotFound, so callers observe only
// "both present" or "absent".
func (s *Store) LoadTokens(ctx context.Context) (models.TokenPair, error) {
	var pair models.TokenPair

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		pair.AccessToken = string(bucket.Get(accessTokenKey))
		pair.RefreshToken = string(bucket.Get(refreshTokenKey))

		if !pair.Complete() {
			return ErrTokensNotFound
		}

		return nil
	})
	if err != nil {
		return models.TokenPair{}, err
	}

	return pair, nil
}

// ClearTokens removes both tokens inside a single transaction. It is
// idempotent: clearing an empty or partially-populated store succeeds.
func (s *Store) ClearTokens(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		if err := bucket.Delete(accessTokenKey); err != nil {
			return fmt.Errorf("delete access token: %w", err)
		}
		if err := bucket.Delete(refreshTokenKey); err != nil {
			return fmt.Errorf("delete refresh token: %w", err)
		}

		return nil
	})
}
