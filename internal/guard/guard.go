// Package guard decides whether a navigation to a protected destination may
// proceed. It is a pure function of the session snapshot and the requested
// location; it holds no state of its own and never talks to the network.
package guard

import "github.com/foyerhq/foyer-client/models"

// Well-known locations of the client's navigation space.
const (
	// LoginPath is the unauthenticated entry point.
	LoginPath = "/login"

	// HomePath is the default authenticated destination.
	HomePath = "/"
)

// Action is the kind of outcome a guard evaluation produces.
type Action int

const (
	// ActionWait means the rehydration pass has not resolved yet: render a
	// neutral placeholder, render nothing else, and do not redirect. This
	// prevents a flash-redirect to login before boot completes.
	ActionWait Action = iota

	// ActionAllow means the protected content renders unchanged.
	ActionAllow

	// ActionRedirect means the navigation is denied and the user is sent
	// to Target instead.
	ActionRedirect
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	// Action is the verdict kind.
	Action Action

	// Target is the redirect destination; set only for ActionRedirect.
	Target string

	// From preserves the originally requested location so a successful
	// login can return the user to it; set only for ActionRedirect.
	From string

	// ReplaceHistory requests that the redirect replace the current
	// history entry rather than push a new one, so back-navigation does
	// not loop through the guard. Always true for ActionRedirect.
	ReplaceHistory bool
}

// Evaluate gates a navigation to the protected location requested.
func Evaluate(session models.Session, requested string) Decision {
	if session.Loading {
		return Decision{Action: ActionWait}
	}

	if !session.IsAuthenticated() {
		return Decision{
			Action:         ActionRedirect,
			Target:         LoginPath,
			From:           requested,
			ReplaceHistory: true,
		}
	}

	return Decision{Action: ActionAllow}
}

// ReturnTo resolves the destination a successful login should navigate to,
// given the preserved "from" location. An absent or self-referential origin
// falls back to the authenticated home.
func ReturnTo(from string) string {
	if from == "" || from == LoginPath {
		return HomePath
	}
	return from
}
