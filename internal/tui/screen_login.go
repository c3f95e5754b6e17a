package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/service"
	"github.com/foyerhq/foyer-client/models"
)

// LoginModel is the Bubble Tea model for the login entry point. It renders
// email and password inputs and dispatches an async login command on
// submission. Success is finalized by [RootModel]; failure stays on the page
// with the user-facing message.
type LoginModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and
// password inputs. The email field receives focus immediately; the password
// field uses masked echo.
func NewLoginModel(ctx context.Context, session service.SessionService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg] — clears submitting state; on error, shows the
//     user-facing message.
//   - tab / shift+tab — moves focus between inputs.
//   - ctrl+n          — navigates to the signup page.
//   - enter           — validates inputs and dispatches the login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.UserMessage(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+n":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Path: signupPath} }
		case "tab", "shift+tab":
			m.focusNext()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	out := titleStyle.Render("Sign in to Foyer") + "\n\n"
	out += "Email:    [" + m.inputs[0].View() + "]\n"
	out += "Password: [" + m.inputs[1].View() + "]\n\n"

	if m.submitting {
		out += "Signing in...\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n"
	}

	out += helpStyle.Render("tab next field  enter submit  ctrl+n create account  ctrl+c quit")
	return out
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Login(m.ctx, models.Credentials{Email: email, Password: password})
		return loginResultMsg{user: user, err: err}
	}
}
