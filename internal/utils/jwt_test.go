package utils

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foyerhq/foyer-client/models"
)

// buildToken assembles an unsigned JWT-shaped token with the given payload.
// The signature segment is filler: DecodeClaims never verifies it.
func buildToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." +
		base64.RawURLEncoding.EncodeToString(body) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestDecodeClaims_Success(t *testing.T) {
	token := buildToken(t, map[string]any{
		"sub":   "2f5c1f0a-8f7e-4d4e-9a01-64a1f0d2b9c3",
		"email": "resident@example.com",
		"exp":   1893456000,
	})

	claim, err := DecodeClaims(token)

	require.NoError(t, err)
	assert.Equal(t, models.Claim{
		SubjectID: "2f5c1f0a-8f7e-4d4e-9a01-64a1f0d2b9c3",
		Email:     "resident@example.com",
	}, claim)
}

func TestDecodeClaims_ClaimToUser(t *testing.T) {
	claim := models.Claim{SubjectID: "user-id", Email: "resident@example.com"}

	user := claim.User()

	assert.Equal(t, "user-id", user.ID)
	assert.Equal(t, "resident@example.com", user.Email)
	assert.False(t, user.EmailConfirmed())
}

func TestDecodeClaims_Malformed(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty string",
			token: "",
		},
		{
			name:  "no segments",
			token: "not-a-token",
		},
		{
			name:  "two segments only",
			token: "aaaa.bbbb",
		},
		{
			name:  "payload is not base64",
			token: header + ".%%%%." + header,
		},
		{
			name:  "payload is not json",
			token: header + "." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + "." + header,
		},
		{
			name:  "missing sub claim",
			token: buildToken(t, map[string]any{"email": "resident@example.com"}),
		},
		{
			name:  "empty sub claim",
			token: buildToken(t, map[string]any{"sub": "", "email": "resident@example.com"}),
		},
		{
			name:  "sub claim is not a string",
			token: buildToken(t, map[string]any{"sub": 42, "email": "resident@example.com"}),
		},
		{
			name:  "missing email claim",
			token: buildToken(t, map[string]any{"sub": "user-id"}),
		},
		{
			name:  "empty email claim",
			token: buildToken(t, map[string]any{"sub": "user-id", "email": ""}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim, err := DecodeClaims(tt.token)

			// Every malformed input collapses into the same sentinel so
			// callers cannot accidentally branch on the failure sub-case.
			assert.ErrorIs(t, err, ErrDecodeFailed)
			assert.Equal(t, models.Claim{}, claim)
		})
	}
}
