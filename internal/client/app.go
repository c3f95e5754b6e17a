// Package client assembles the Foyer client application: it owns the
// lifetime of the local store, the service layer, and the UI.
package client

import (
	"context"
	"errors"

	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/service"
	"github.com/foyerhq/foyer-client/internal/store"
	"github.com/foyerhq/foyer-client/internal/tui"
)

// App ties the client's layers together and runs the UI until exit.
type App struct {
	services *service.ClientServices
	store    *store.Store
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires an App from its already-constructed parts.
func NewApp(services *service.ClientServices, localStore *store.Store, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || localStore == nil || ui == nil {
		return nil, errors.New("app wiring incomplete")
	}
	return &App{services: services, store: localStore, ui: ui, logger: logger}, nil
}

// Run starts the UI and blocks until the user quits. The background refresh
// job and the local database are torn down on the way out, whatever state
// the UI exited in.
func (a *App) Run() error {
	ctx := context.Background()

	defer func() {
		a.services.RefreshJob.Stop()
		if err := a.store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close local store")
		}
	}()

	a.logger.Info().Msg("starting foyer client")
	return a.ui.Run(ctx)
}
