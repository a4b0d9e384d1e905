package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/issuectl/internal/core/logging"
)

// Controller is the single owner of the process-wide session. All writes to
// the session state and the credential store go through it.
//
// Snapshot reads are safe from any goroutine. Session-mutating calls (Login,
// Signup, Logout) assume at most one is in flight at a time; serializing them
// is the caller's responsibility.
type Controller struct {
	api   API
	creds CredentialStore
	log   zerolog.Logger

	mu       sync.Mutex
	resolved bool
	status   Status
	user     *User
}

// NewController creates a session controller in the unresolved state.
func NewController(api API, creds CredentialStore) *Controller {
	return &Controller{
		api:    api,
		creds:  creds,
		log:    logging.Component("auth"),
		status: StatusUnresolved,
	}
}

// Resolve establishes the initial session state from the stored credential.
// It runs at most once per process; repeat calls return immediately, so it is
// safe to trigger from hooks that may fire more than once.
//
// Resolve never fails from the caller's point of view: a missing credential
// resolves to unauthenticated without a network call, and any profile-fetch
// failure (rejected credential or unreachable server alike) clears the stored
// credential and resolves to unauthenticated.
func (c *Controller) Resolve(ctx context.Context) {
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		return
	}
	c.resolved = true
	c.mu.Unlock()

	if _, err := c.creds.Get(ctx); err != nil {
		if !errors.Is(err, ErrNoCredential) {
			c.log.Warn().Err(err).Msg("credential lookup failed")
		}
		c.setState(StatusUnauthenticated, nil)
		return
	}

	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.Debug().Err(err).Msg("stored credential rejected")
		if clearErr := c.creds.Clear(ctx); clearErr != nil {
			c.log.Warn().Err(clearErr).Msg("failed to clear stale credential")
		}
		c.setState(StatusUnauthenticated, nil)
		return
	}

	c.setState(StatusAuthenticated, &user)
}

// Login signs in with the given email and password. On success the returned
// credential is persisted and the session becomes authenticated.
//
// If the login endpoint rejects the attempt, nothing is persisted and the
// session state is unchanged. If login succeeds but the follow-up profile
// fetch fails, the credential stays persisted while the session remains
// signed out; the next Resolve retries the stored credential.
func (c *Controller) Login(ctx context.Context, email, password string) (User, error) {
	credential, err := c.api.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	if err := c.creds.Set(ctx, credential); err != nil {
		return User{}, fmt.Errorf("store credential: %w", err)
	}

	user, err := c.api.Me(ctx)
	if err != nil {
		return User{}, err
	}

	c.setState(StatusAuthenticated, &user)
	c.log.Info().Str("email", user.Email).Msg("signed in")
	return user, nil
}

// Signup registers a new account, then signs in with the same credentials.
// A signup failure propagates without attempting the login.
func (c *Controller) Signup(ctx context.Context, name, email, password string) (User, error) {
	if err := c.api.Signup(ctx, name, email, password); err != nil {
		return User{}, err
	}
	return c.Login(ctx, email, password)
}

// Logout tears down the session. The remote call is best effort: a failure is
// logged and never surfaced, and the stored credential and in-memory session
// are cleared regardless. Logout is idempotent.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.Warn().Err(err).Msg("remote logout failed")
	}
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Warn().Err(err).Msg("failed to clear credential")
	}
	c.setState(StatusUnauthenticated, nil)
}

// Status returns the current session status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// CurrentUser returns the signed-in user. The second return is true iff the
// session is authenticated.
func (c *Controller) CurrentUser() (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}

// setState records an explicit transition. Any explicit transition also marks
// the session resolved so the status can never fall back to unresolved.
func (c *Controller) setState(status Status, user *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = true
	c.status = status
	c.user = user
}
