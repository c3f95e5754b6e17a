package service

import (
	"context"
	"time"

	"github.com/foyerhq/foyer-client/models"
)

// SessionService owns the process-wide session record. It is the single
// writer of both the in-memory session and the durable token store; every
// other component only reads snapshots.
type SessionService interface {
	// Restore performs the boot-time rehydration pass: load the stored
	// credential pair, decode it, and confirm the identity with the API.
	// It runs at most once per process; later calls return the current
	// snapshot without side effects. The returned session always has
	// Loading == false.
	Restore(ctx context.Context) models.Session

	// Login authenticates with the API, persists the issued token pair,
	// and installs the server-confirmed identity. On failure the session
	// is unchanged and the error's display text is available via
	// [UserMessage].
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Signup registers a new account with the same session effect as
	// Login. The returned user reports an unconfirmed email until the
	// verification step completes.
	Signup(ctx context.Context, data models.SignupData) (models.User, error)

	// Logout tears the session down unconditionally: the remote logout is
	// best-effort and its outcome ignored, then the token store is cleared
	// and the session reset. Calling it twice is safe.
	Logout(ctx context.Context)

	// RefreshUser re-fetches the authoritative identity for an
	// authenticated session. Failure is recorded and leaves the current
	// user untouched; it is a no-op when nobody is logged in.
	RefreshUser(ctx context.Context)

	// Snapshot returns the current session state.
	Snapshot() models.Session

	// AccessToken returns the access token of the live session, or ""
	// when unauthenticated. Read-only collaborators (household fetch) use
	// it to authenticate their own requests.
	AccessToken() string
}

// HouseholdService resolves the active household context for the
// authenticated user.
type HouseholdService interface {
	// Resolve fetches the user's households and selects the current one:
	// the first element of the ordered list, nil when the list is empty.
	// Fetch failures are recorded for diagnostics and yield an empty
	// context; they never propagate to the caller.
	Resolve(ctx context.Context) models.HouseholdContext
}

// IdentityRefreshJob periodically re-fetches the authenticated identity in
// the background.
type IdentityRefreshJob interface {
	// Start launches the background goroutine, refreshing every interval
	// (default 5 minutes when interval is zero or negative). Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has
	// terminated. Safe to call when the job is not running.
	Stop()
}
