package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/foyerhq/foyer-client/internal/adapter"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/store"
	"github.com/foyerhq/foyer-client/internal/utils"
	"github.com/foyerhq/foyer-client/models"
)

type sessionManager struct {
	tokens store.TokenRepository
	api    adapter.AuthAPI
	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
	pair    models.TokenPair

	restoreOnce sync.Once
}

// NewSessionManager creates the session manager in its booting state:
// no user, Loading set, waiting for Restore.
func NewSessionManager(tokens store.TokenRepository, api adapter.AuthAPI, logger *logger.Logger) SessionService {
	return &sessionManager{
		tokens:  tokens,
		api:     api,
		logger:  logger,
		session: models.Session{Loading: true},
	}
}

// Restore implements [SessionService]. The sync.Once guarantees a single
// rehydration pass per process lifetime.
func (m *sessionManager) Restore(ctx context.Context) models.Session {
	m.restoreOnce.Do(func() { m.restore(ctx) })
	return m.Snapshot()
}

func (m *sessionManager) restore(ctx context.Context) {
	pair, err := m.tokens.LoadTokens(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokensNotFound) {
			m.logger.Error().Err(err).Msg("load stored tokens")
		}
		m.install(models.TokenPair{}, nil, models.OriginNone)
		return
	}

	claim, err := utils.DecodeClaims(pair.AccessToken)
	if err != nil {
		// Malformed token is fatal to the stored session.
		m.logger.Warn().Err(err).Msg("stored access token malformed, clearing credentials")
		if clearErr := m.tokens.ClearTokens(ctx); clearErr != nil {
			m.logger.Error().Err(clearErr).Msg("clear tokens after decode failure")
		}
		m.install(models.TokenPair{}, nil, models.OriginNone)
		return
	}

	user, err := m.api.CurrentUser(ctx, pair.AccessToken)
	if err != nil {
		// A transient API failure must not evict a user holding a
		// structurally valid token: keep the session alive on the
		// decoded claims.
		m.logger.Warn().Err(err).Msg("identity fetch failed, falling back to decoded claims")
		fallback := claim.User()
		m.install(pair, &fallback, models.OriginToken)
		return
	}

	m.install(pair, &user, models.OriginServer)
}

// Login implements [SessionService].
func (m *sessionManager) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	auth, err := m.api.Login(ctx, creds)
	if err != nil {
		m.logger.Debug().Err(err).Str("email", creds.Email).Msg("login rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	m.persistTokens(ctx, auth.Tokens)
	m.install(auth.Tokens, &auth.User, models.OriginServer)
	m.logger.Info().Str("user_id", auth.User.ID).Msg("logged in")

	return auth.User, nil
}

// Signup implements [SessionService].
func (m *sessionManager) Signup(ctx context.Context, data models.SignupData) (models.User, error) {
	auth, err := m.api.Signup(ctx, data)
	if err != nil {
		m.logger.Debug().Err(err).Str("email", data.Email).Msg("signup rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrSignupFailed, err)
	}

	m.persistTokens(ctx, auth.Tokens)
	m.install(auth.Tokens, &auth.User, models.OriginServer)
	m.logger.Info().Str("user_id", auth.User.ID).Msg("signed up, email verification pending")

	return auth.User, nil
}

// Logout implements [SessionService]. Local teardown is unconditional: the
// user must be able to log out even when the network or server is down.
func (m *sessionManager) Logout(ctx context.Context) {
	if token := m.AccessToken(); token != "" {
		if err := m.api.Logout(ctx, token); err != nil {
			m.logger.Debug().Err(err).Msg("remote logout failed, proceeding with local teardown")
		}
	}

	if err := m.tokens.ClearTokens(ctx); err != nil {
		m.logger.Error().Err(err).Msg("clear tokens on logout")
	}

	m.install(models.TokenPair{}, nil, models.OriginNone)
	m.logger.Info().Msg("logged out")
}

// RefreshUser implements [SessionService].
func (m *sessionManager) RefreshUser(ctx context.Context) {
	token := m.AccessToken()
	if token == "" {
		return
	}

	user, err := m.api.CurrentUser(ctx, token)
	if err != nil {
		m.logger.Debug().Err(err).Msg("identity refresh failed, keeping current user")
		return
	}

	// A logout may have raced the fetch; logout wins, so only install the
	// refreshed identity while the session is still live.
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.User != nil {
		m.session = models.Session{User: &user, Origin: models.OriginServer}
	}
}

// Snapshot implements [SessionService].
func (m *sessionManager) Snapshot() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// AccessToken implements [SessionService].
func (m *sessionManager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.User == nil {
		return ""
	}
	return m.pair.AccessToken
}

// install atomically replaces the session and its backing token pair.
// Loading is cleared on every install: each call is a terminal outcome of
// some flow.
func (m *sessionManager) install(pair models.TokenPair, user *models.User, origin models.IdentityOrigin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = pair
	m.session = models.Session{User: user, Origin: origin}
}

// persistTokens writes the freshly issued pair to durable storage. A write
// failure is logged but does not fail the flow: the session stays live in
// memory and only the next reload loses it.
func (m *sessionManager) persistTokens(ctx context.Context, pair models.TokenPair) {
	if err := m.tokens.SaveTokens(ctx, pair); err != nil {
		m.logger.Error().Err(err).Msg("persist token pair")
	}
}
