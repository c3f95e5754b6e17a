// Package tui hosts the terminal user interface of the Foyer client. The
// root model routes between pages through the route guard; individual pages
// only ever talk to the service layer through async commands.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/config"
	"github.com/foyerhq/foyer-client/internal/guard"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/internal/service"
)

// TUI wraps the Bubble Tea program running the client's screens.
type TUI struct {
	services        *service.ClientServices
	logger          *logger.Logger
	version         string
	refreshInterval time.Duration
}

// New creates the TUI over the client service layer. The config supplies
// the version label and the interval of the background identity refresh job
// started once a session is confirmed.
func New(services *service.ClientServices, cfg *config.ClientConfig, logger *logger.Logger) (*TUI, error) {
	if services == nil || cfg == nil {
		return nil, errors.New("nil services or config")
	}
	return &TUI{
		services:        services,
		logger:          logger,
		version:         cfg.App.Version,
		refreshInterval: cfg.Workers.RefreshInterval,
	}, nil
}

// Run builds all pages, opens the boot placeholder, and blocks until the
// user quits. The boot page starts the one-time session restore; every
// subsequent page switch goes through the route guard.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		bootPath:        NewBootModel(ctx, t.services.Session),
		guard.LoginPath: NewLoginModel(ctx, t.services.Session),
		signupPath:      NewSignupModel(ctx, t.services.Session),
		guard.HomePath:  NewHomeModel(ctx, t.services, t.version),
	}

	root := NewRootModel(ctx, t.services, pages, t.refreshInterval)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}
