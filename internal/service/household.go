package service

import (
	"context"

	"github.com/foyerhq/foyer-client/internal/adapter"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/models"
)

type householdService struct {
	api     adapter.HouseholdAPI
	session SessionService
	logger  *logger.Logger
}

// NewHouseholdService creates the resolver of the active household context.
func NewHouseholdService(api adapter.HouseholdAPI, session SessionService, logger *logger.Logger) HouseholdService {
	return &householdService{api: api, session: session, logger: logger}
}

// Resolve implements [HouseholdService]. The current household is the first
// element of the ordered list the API returns. An explicit per-user stored
// preference is a planned extension of this selection, resolved with a
// fallback to first-of-list; until then the policy stays exactly
// first-of-list.
func (h *householdService) Resolve(ctx context.Context) models.HouseholdContext {
	token := h.session.AccessToken()
	if token == "" {
		return models.HouseholdContext{}
	}

	households, err := h.api.GetAll(ctx, token)
	if err != nil {
		// The UI stays usable on the fallback label; the failure is only
		// recorded here.
		h.logger.Error().Err(err).Msg("fetch households")
		return models.HouseholdContext{}
	}

	hctx := models.HouseholdContext{Households: households}
	if len(households) > 0 {
		hctx.Current = &households[0]
	}

	return hctx
}
