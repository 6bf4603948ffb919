// Package common defines shared constants and sentinel errors used across
// the wellness journal layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication errors surfaced to the user.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")

	// Validation failed; the field-level details travel separately.
	ErrValidation = errors.New("validation error")

	// Token lifecycle errors. These are never surfaced to the user; they
	// resolve to a logged-out session.
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrWrongTokenUse = errors.New("wrong token kind")
)
