package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the attached credential was missing, expired, or
// rejected by the server.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidCredentials indicates a login attempt with a bad email/password
// pair.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ValidationError carries a server-side validation message, such as a
// duplicate signup email.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// APIError is returned for unexpected non-2xx responses.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
}
