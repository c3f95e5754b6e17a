package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foyerhq/foyer-client/internal/adapter"
)

func TestUserMessage(t *testing.T) {
	apiErr := &adapter.APIError{Status: http.StatusUnauthorized, Message: "Invalid login credentials"}
	emptyAPIErr := &adapter.APIError{Status: http.StatusInternalServerError}

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "api message wins for login",
			err:      fmt.Errorf("%w: %w", ErrLoginFailed, apiErr),
			expected: "Invalid login credentials",
		},
		{
			name:     "login without api message falls back",
			err:      fmt.Errorf("%w: %w", ErrLoginFailed, errors.New("connection refused")),
			expected: loginFallbackMessage,
		},
		{
			name:     "login with empty api message falls back",
			err:      fmt.Errorf("%w: %w", ErrLoginFailed, emptyAPIErr),
			expected: loginFallbackMessage,
		},
		{
			name:     "signup without api message falls back",
			err:      fmt.Errorf("%w: %w", ErrSignupFailed, errors.New("connection refused")),
			expected: signupFallbackMessage,
		},
		{
			name: "api message wins for signup",
			err: fmt.Errorf("%w: %w", ErrSignupFailed,
				&adapter.APIError{Status: http.StatusBadRequest, Message: "Email already registered"}),
			expected: "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}
