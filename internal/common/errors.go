// Package common defines shared constants and sentinel errors used across
// the watchlist server and CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. Details are appended with %w wrapping.
	ErrInvalidInput = errors.New("invalid input")

	// Credential errors. Unknown username and wrong password share
	// ErrInvalidCredentials.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session token errors. Malformed, expired and badly signed tokens all
	// map to ErrInvalidToken.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownOwner is returned when a watchlist row references a user
	// that does not exist.
	ErrUnknownOwner = errors.New("unknown owner")
)
