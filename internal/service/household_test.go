package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/mock"
	"github.com/foyerhq/foyer-client/models"
)

// authenticatedSession builds a session manager already holding a confirmed
// identity, bypassing the login flow.
func authenticatedSession(accessToken string) *sessionManager {
	m := &sessionManager{logger: logger.Nop()}
	user := models.User{ID: "user-id", Email: "resident@example.com"}
	m.install(models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token-value",
	}, &user, models.OriginServer)

	return m
}

func TestResolve_FirstOfListIsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockHouseholdAPI(ctrl)

	households := []models.Household{
		{ID: "hh-1", Name: "Maple Street"},
		{ID: "hh-2", Name: "Lake House"},
		{ID: "hh-3", Name: "Downtown Loft"},
	}
	api.EXPECT().GetAll(gomock.Any(), "access-token-value").Return(households, nil)

	svc := NewHouseholdService(api, authenticatedSession("access-token-value"), logger.Nop())

	hctx := svc.Resolve(context.Background())

	require.NotNil(t, hctx.Current)
	assert.Equal(t, "hh-1", hctx.Current.ID)
	assert.Equal(t, "Maple Street", hctx.Label())
	assert.Len(t, hctx.Households, 3)
}

func TestResolve_EmptyListFallsBackToAppLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockHouseholdAPI(ctrl)
	api.EXPECT().GetAll(gomock.Any(), "access-token-value").Return([]models.Household{}, nil)

	svc := NewHouseholdService(api, authenticatedSession("access-token-value"), logger.Nop())

	hctx := svc.Resolve(context.Background())

	assert.Nil(t, hctx.Current)
	assert.Equal(t, models.FallbackHouseholdLabel, hctx.Label())
}

func TestResolve_FetchErrorYieldsEmptyContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockHouseholdAPI(ctrl)
	api.EXPECT().GetAll(gomock.Any(), "access-token-value").
		Return(nil, errors.New("connection refused"))

	svc := NewHouseholdService(api, authenticatedSession("access-token-value"), logger.Nop())

	hctx := svc.Resolve(context.Background())

	assert.Nil(t, hctx.Current)
	assert.Empty(t, hctx.Households)
	assert.Equal(t, models.FallbackHouseholdLabel, hctx.Label())
}

func TestResolve_UnauthenticatedSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No GetAll expectation: a fetch without a token would fail the test.
	api := mock.NewMockHouseholdAPI(ctrl)

	svc := NewHouseholdService(api, &sessionManager{logger: logger.Nop()}, logger.Nop())

	hctx := svc.Resolve(context.Background())

	assert.Nil(t, hctx.Current)
	assert.Empty(t, hctx.Households)
}
