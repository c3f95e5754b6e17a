package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/guard"
	"github.com/foyerhq/foyer-client/internal/service"
)

// RootModel is the TUI router:
//  1. keeps the active page, addressed by path
//  2. handles global Ctrl+C quit
//  3. runs every protected navigation through the route guard
//  4. delegates all other messages to the active page
//
// Pages never decide admission themselves; they emit [NavigateTo] and the
// guard's verdict picks what actually renders.
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices

	pages       map[string]tea.Model
	current     tea.Model
	currentPath string

	// pendingFrom carries the location a guard redirect preserved, so the
	// next successful login can return there.
	pendingFrom string

	refreshInterval time.Duration
	quitByUser      bool
}

// NewRootModel registers all pages and opens the boot page; the session is
// not resolved yet, so nothing else may render.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[string]tea.Model, refreshInterval time.Duration) RootModel {
	return RootModel{
		ctx:             ctx,
		services:        services,
		pages:           pages,
		current:         pages[bootPath],
		currentPath:     bootPath,
		refreshInterval: refreshInterval,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		r.services.RefreshJob.Stop()
		return r, tea.Quit
	}

	switch m := msg.(type) {
	case sessionRestoredMsg:
		// Boot resolved; the guard now makes its first real decision. An
		// already-confirmed session also gets the background refresh job.
		if m.session.IsAuthenticated() {
			r.services.RefreshJob.Start(r.ctx, r.refreshInterval)
		}
		return r.navigate(NavigateTo{Path: guard.HomePath})

	case loginResultMsg:
		if m.err == nil {
			r.services.RefreshJob.Start(r.ctx, r.refreshInterval)
			return r.navigate(NavigateTo{Path: guard.ReturnTo(r.pendingFrom)})
		}

	case signupResultMsg:
		if m.err == nil {
			r.services.RefreshJob.Start(r.ctx, r.refreshInterval)
			return r.navigate(NavigateTo{Path: guard.ReturnTo(r.pendingFrom)})
		}

	case logoutDoneMsg:
		r.services.RefreshJob.Stop()
		r.pendingFrom = ""
		return r.navigate(NavigateTo{Path: guard.LoginPath})

	case NavigateTo:
		return r.navigate(m)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return ""
	}
	return appStyle.Render(r.current.View())
}

// navigate applies the guard to protected destinations and switches pages
// per its verdict.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	path := nav.Path

	if isProtected(path) {
		switch d := guard.Evaluate(r.services.Session.Snapshot(), path); d.Action {
		case guard.ActionWait:
			return r.open(bootPath)
		case guard.ActionRedirect:
			r.pendingFrom = d.From
			return r.open(d.Target)
		}
	}

	if nav.From != "" {
		r.pendingFrom = nav.From
	}
	return r.open(path)
}

func (r RootModel) open(path string) (tea.Model, tea.Cmd) {
	next, exists := r.pages[path]
	if !exists {
		return r, nil
	}

	r.current = next
	r.currentPath = path
	return r, r.current.Init()
}

// isProtected reports whether a destination requires an authenticated
// session. Only the auth entry points are public.
func isProtected(path string) bool {
	return path != guard.LoginPath && path != signupPath && path != bootPath
}
