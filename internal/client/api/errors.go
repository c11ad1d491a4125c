package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned for 401 responses, after the global
	// session-clearing side effect has run.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation is returned for 400 responses (bad credentials,
	// duplicate signup, malformed input).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for 409 responses (e.g. duplicate skill
	// request). Informational rather than fatal at most call sites.
	ErrConflict = errors.New("conflict")
)

// StatusError carries the HTTP status and the backend's message for a failed
// call. It unwraps to the matching sentinel so callers can errors.Is on the
// taxonomy without caring about status codes.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 400:
		return ErrValidation
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return nil
	}
}
