// Package common defines shared constants and sentinel errors used across
// bandroom components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors surfaced to callers verbatim.
	ErrorValidation      = errors.New("validation error")
	ErrorUnknownMaskPath = errors.New("unsupported update_mask path")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
