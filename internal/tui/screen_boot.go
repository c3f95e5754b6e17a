package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/service"
)

const bootPath = "/boot"

// BootModel is the neutral waiting placeholder shown while the session
// rehydrates from local storage. It kicks off the restore pass and emits
// [sessionRestoredMsg] when the session manager resolves; the root model
// then lets the guard route for the first time.
type BootModel struct {
	ctx     context.Context
	session service.SessionService
	spinner spinner.Model
	started bool
}

// NewBootModel creates the boot placeholder page.
func NewBootModel(ctx context.Context, session service.SessionService) *BootModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &BootModel{ctx: ctx, session: session, spinner: sp}
}

// Init implements [tea.Model]. The restore command runs once; re-entering
// the page (guard wait verdicts) only keeps the spinner going.
func (m *BootModel) Init() tea.Cmd {
	if m.started {
		return m.spinner.Tick
	}
	m.started = true
	return tea.Batch(m.spinner.Tick, m.cmdRestore())
}

// Update implements [tea.Model].
func (m *BootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *BootModel) View() string {
	return m.spinner.View() + " Loading your session..."
}

func (m *BootModel) cmdRestore() tea.Cmd {
	return func() tea.Msg {
		return sessionRestoredMsg{session: m.session.Restore(m.ctx)}
	}
}
