// Package auth owns the client session lifecycle: the tri-state
// authentication status, the signed-in user, and the credential used to
// authorize API requests.
package auth

import (
	"context"
	"errors"
	"time"
)

// Status represents the authentication state of the process-wide session.
//
// A session starts unresolved exactly once per process lifetime and never
// returns to it; every transition afterward moves between authenticated and
// unauthenticated. The tri-state exists so consumers can distinguish
// "haven't checked yet" from "checked, no session".
type Status string

const (
	StatusUnresolved      Status = "unresolved"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// User is the signed-in identity. Opaque beyond display use.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrNoCredential is returned by CredentialStore.Get when nothing is stored.
var ErrNoCredential = errors.New("no credential stored")

// CredentialStore persists a single opaque bearer token across process
// restarts. The token's contents are opaque to this layer.
type CredentialStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// API is the slice of the HTTP client the session controller depends on.
type API interface {
	// Login exchanges an email/password pair for a bearer credential.
	Login(ctx context.Context, email, password string) (string, error)
	// Signup registers a new account. It does not sign the account in.
	Signup(ctx context.Context, name, email, password string) error
	// Me fetches the profile of the user the attached credential belongs to.
	Me(ctx context.Context) (User, error)
	// Logout invalidates the current session server-side.
	Logout(ctx context.Context) error
}
