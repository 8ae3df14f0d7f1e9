// Package common defines sentinel errors shared across the herbalif
// companion layer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account errors, surfaced verbatim to the presentation layer.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
