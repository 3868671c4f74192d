// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned for any 401 response, after the configured
// unauthorized handler has run.
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is a validation or business failure reported by the server. The
// message is surfaced verbatim to the UI.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// transportError marks a failure where no response arrived at all. Only
// these are eligible for the single silent read retry.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "api: transport failure: " + e.err.Error() }

func (e *transportError) Unwrap() error { return e.err }

// IsTransient reports whether err is a transport failure with no server
// response.
func IsTransient(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// IsUnauthorized reports whether err stems from a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
