package tui

import (
	"github.com/foyerhq/foyer-client/models"
)

// NavigateTo asks the root model to switch pages. Path addresses a page
// ("/login", "/signup", "/"); From preserves the originally requested
// location across a guard redirect so login can return to it.
type NavigateTo struct {
	Path string
	From string
}

type sessionRestoredMsg struct {
	session models.Session
}

type loginResultMsg struct {
	user models.User
	err  error
}

type signupResultMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct{}

type identityRefreshedMsg struct{}

type householdResolvedMsg struct {
	context models.HouseholdContext
}

type copiedMsg struct{}

type clearStatusMsg struct{}
