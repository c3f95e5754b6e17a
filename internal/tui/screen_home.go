package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/service"
	"github.com/foyerhq/foyer-client/models"
)

// HomeModel is the default authenticated page. It shows the current identity
// and the resolved household context, and hosts logout.
type HomeModel struct {
	ctx      context.Context
	services *service.ClientServices

	household models.HouseholdContext
	resolving bool
	status    string
	version   string
}

// NewHomeModel creates the home page.
func NewHomeModel(ctx context.Context, services *service.ClientServices, version string) *HomeModel {
	return &HomeModel{ctx: ctx, services: services, version: version}
}

// Init implements [tea.Model]. Every entry re-resolves the household
// context; the selection is derived state, not a stored preference.
func (m *HomeModel) Init() tea.Cmd {
	m.resolving = true
	return m.cmdResolveHouseholds()
}

// Update implements [tea.Model]. Handled keys:
//   - c      — copies the current household id to the clipboard.
//   - r      — re-fetches identity and households.
//   - ctrl+l — logs out.
func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case householdResolvedMsg:
		m.resolving = false
		m.household = msg.context
		return m, nil

	case identityRefreshedMsg:
		return m, m.cmdResolveHouseholds()

	case copiedMsg:
		m.status = "Household id copied"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			if m.household.Current == nil {
				return m, nil
			}
			if err := clipboard.WriteAll(m.household.Current.ID); err != nil {
				m.status = "Clipboard unavailable"
				return m, m.cmdClearStatusLater()
			}
			return m, func() tea.Msg { return copiedMsg{} }
		case "r":
			m.resolving = true
			return m, m.cmdRefreshIdentity()
		case "ctrl+l":
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

// View implements [tea.Model].
func (m *HomeModel) View() string {
	session := m.services.Session.Snapshot()
	if session.User == nil {
		return ""
	}
	user := *session.User

	out := titleStyle.Render(m.household.Label()) + "\n\n"

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	out += labelStyle.Render("Signed in:") + " " + name + " <" + user.Email + ">\n"

	switch {
	case m.resolving:
		out += labelStyle.Render("Household:") + " resolving...\n"
	case m.household.Current == nil:
		out += labelStyle.Render("Household:") + " none yet — create one on the web app\n"
	default:
		out += labelStyle.Render("Household:") + " " + m.household.Current.Name + "\n"
	}
	if n := len(m.household.Households); n > 1 {
		out += labelStyle.Render("Member of:") + " " + strconv.Itoa(n) + " households\n"
	}

	if session.Origin == models.OriginToken {
		out += "\n" + noticeStyle.Render("Offline mode: identity not confirmed by the server yet") + "\n"
	}
	if !user.EmailConfirmed() {
		out += "\n" + noticeStyle.Render("Check your inbox to verify your email address") + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy household id  r refresh  ctrl+l log out  ctrl+c quit")
	if m.version != "" {
		out += "\n" + helpStyle.Render("foyer "+m.version)
	}
	return out
}

func (m *HomeModel) cmdResolveHouseholds() tea.Cmd {
	return func() tea.Msg {
		return householdResolvedMsg{context: m.services.Households.Resolve(m.ctx)}
	}
}

func (m *HomeModel) cmdRefreshIdentity() tea.Cmd {
	return func() tea.Msg {
		m.services.Session.RefreshUser(m.ctx)
		return identityRefreshedMsg{}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		m.services.Session.Logout(m.ctx)
		return logoutDoneMsg{}
	}
}

func (m *HomeModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
