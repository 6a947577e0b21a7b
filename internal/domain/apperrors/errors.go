// Package apperrors defines the failure kinds surfaced by the application
// services. Callers match them with errors.Is; anything else is a
// collaborator fault and passes through wrapped.
package apperrors

import "errors"

var (
	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. Both causes produce this same error.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a guarded operation is invoked
	// without a resolvable bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when an operation addresses an id with no
	// matching record. Callers wrap it with the resource name, e.g.
	// "tutorial not found".
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a create or update would violate a
	// uniqueness invariant.
	ErrConflict = errors.New("already exists")

	// ErrTooManyRequests is returned when a caller exceeds the login
	// attempt budget.
	ErrTooManyRequests = errors.New("too many requests")
)
