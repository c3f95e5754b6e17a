package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks any 401 response from the API. It is matchable via
// errors.Is even when the concrete error is an *APIError carrying the
// payload's message.
var ErrUnauthorized = errors.New("client unauthorized")

// APIError is a non-2xx response from the Foyer API, with the user-facing
// message extracted from the error payload. Message may be empty when the
// body carried none; callers needing display text should fall back to their
// own generic message in that case.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Message is the human-readable message from the error payload
	// ({"detail": ...} or {"error": {"message": ...}}).
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Is makes errors.Is(err, ErrUnauthorized) true for 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// UserMessage extracts the API-provided message from err, or returns ""
// when err carries none.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
