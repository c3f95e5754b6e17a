package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foyerhq/foyer-client/internal/service"
	"github.com/foyerhq/foyer-client/models"
)

const signupPath = "/signup"

// SignupModel is the Bubble Tea model for account creation. On success the
// account is logged in immediately and [RootModel] routes to the home page,
// where the pending email verification notice is shown.
type SignupModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewSignupModel creates a [SignupModel] with name, email, and password
// inputs.
func NewSignupModel(ctx context.Context, session service.SessionService) *SignupModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name (optional)"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &SignupModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{nameInput, emailInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *SignupModel) Init() tea.Cmd {
	m.submitting = false
	return textinput.Blink
}

// Update implements [tea.Model]. esc returns to the login page; enter
// validates and dispatches the signup command.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signupResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.UserMessage(result.err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Path: "/login"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			fullName := strings.TrimSpace(m.inputs[0].Value())
			email := strings.TrimSpace(m.inputs[1].Value())
			password := m.inputs[2].Value()
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(fullName, email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SignupModel) View() string {
	out := titleStyle.Render("Create your Foyer account") + "\n\n"
	out += "Name:     [" + m.inputs[0].View() + "]\n"
	out += "Email:    [" + m.inputs[1].View() + "]\n"
	out += "Password: [" + m.inputs[2].View() + "]\n\n"

	if m.submitting {
		out += "Creating account...\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n"
	}

	out += helpStyle.Render("tab next field  enter submit  esc back to login  ctrl+c quit")
	return out
}

func (m *SignupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignupModel) cmdSignup(fullName, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Signup(m.ctx, models.SignupData{
			FullName: fullName,
			Email:    email,
			Password: password,
		})
		return signupResultMsg{user: user, err: err}
	}
}
