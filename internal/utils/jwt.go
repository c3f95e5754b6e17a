// Package utils contains small helpers shared across the client, currently
// the unverified access-token claim extraction used during session
// rehydration.
package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foyerhq/foyer-client/models"
)

// ErrDecodeFailed is the uniform outcome of any claim extraction failure:
// wrong segment count, broken base64, invalid JSON, or missing claims.
// Callers must branch only on success vs failure, never on the sub-case.
var ErrDecodeFailed = errors.New("token decode failed")

// DecodeClaims extracts the subject id and email from the payload segment of
// an access token without verifying its signature. Verification is the
// server's job; the decoded claim is only ever used as a same-session
// fallback identity.
//
// Returns a models.Claim on success or an error wrapping [ErrDecodeFailed]
// on any malformed input.
func DecodeClaims(tokenString string) (models.Claim, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Claim{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Claim{}, fmt.Errorf("%w: unexpected claims type", ErrDecodeFailed)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Claim{}, fmt.Errorf("%w: missing subject claim", ErrDecodeFailed)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return models.Claim{}, fmt.Errorf("%w: missing email claim", ErrDecodeFailed)
	}

	return models.Claim{SubjectID: sub, Email: email}, nil
}
