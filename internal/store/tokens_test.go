package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/foyerhq/foyer-client/internal/config"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.ClientStorage{
		DB: config.ClientDB{Path: filepath.Join(t.TempDir(), "foyer.db")},
	}

	s, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSaveTokens_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	pair := models.TokenPair{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
	}

	require.NoError(t, s.SaveTokens(ctx, pair))

	loaded, err := s.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, loaded.AccessToken)
	assert.Equal(t, pair.RefreshToken, loaded.RefreshToken)
}

func TestLoadTokens_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	pair, err := s.LoadTokens(context.Background())

	assert.ErrorIs(t, err, ErrTokensNotFound)
	assert.Equal(t, models.TokenPair{}, pair)
}

func TestSaveTokens_IncompletePair(t *testing.T) {
	tests := []struct {
		name string
		pair models.TokenPair
	}{
		{name: "missing refresh token", pair: models.TokenPair{AccessToken: "access"}},
		{name: "missing access token", pair: models.TokenPair{RefreshToken: "refresh"}},
		{name: "both empty", pair: models.TokenPair{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			ctx := context.Background()

			err := s.SaveTokens(ctx, tt.pair)
			assert.ErrorIs(t, err, ErrIncompleteTokenPair)

			// The rejected write must not leave anything behind.
			_, err = s.LoadTokens(ctx)
			assert.ErrorIs(t, err, ErrTokensNotFound)
		})
	}
}

func TestLoadTokens_PartialPairTreatedAsAbsent(t *testing.T) {
	s := newTestStore(t)

	// Simulate a partial write left behind by an older client.
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(accessTokenKey, []byte("orphan-access"))
	})
	require.NoError(t, err)

	_, err = s.LoadTokens(context.Background())
	assert.ErrorIs(t, err, ErrTokensNotFound)
}

func TestClearTokens_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTokens(ctx, models.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}))

	require.NoError(t, s.ClearTokens(ctx))
	_, err := s.LoadTokens(ctx)
	assert.ErrorIs(t, err, ErrTokensNotFound)

	// Clearing an already empty store is not an error.
	require.NoError(t, s.ClearTokens(ctx))
}

func TestTokens_SurviveReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{
		DB: config.ClientDB{Path: filepath.Join(t.TempDir(), "foyer.db")},
	}
	pair := models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	s, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SaveTokens(ctx, pair))
	require.NoError(t, s.Close())

	reopened, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	loaded, err := reopened.LoadTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, loaded.AccessToken)
	assert.Equal(t, pair.RefreshToken, loaded.RefreshToken)
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	cfg := config.ClientStorage{
		DB: config.ClientDB{Path: filepath.Join(t.TempDir(), "nested", "dir", "foyer.db")},
	}

	s, err := New(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
