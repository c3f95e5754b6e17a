package service

import (
	"github.com/foyerhq/foyer-client/internal/adapter"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/store"
)

// ClientServices groups the client's service layer into a single value that
// can be passed to the UI.
type ClientServices struct {
	Session    SessionService
	Households HouseholdService
	RefreshJob IdentityRefreshJob
}

// NewClientServices wires the service layer over the local token store and
// the API client.
func NewClientServices(tokens store.TokenRepository, api *adapter.HTTPClient, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionManager(tokens, api, logger)

	return &ClientServices{
		Session:    sessionSvc,
		Households: NewHouseholdService(api, sessionSvc, logger),
		RefreshJob: NewIdentityRefreshJob(sessionSvc),
	}
}
