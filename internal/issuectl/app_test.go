package issuectl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/issuectl/internal/api"
	"github.com/colonyops/issuectl/internal/core/auth"
	"github.com/colonyops/issuectl/internal/core/notify"
	"github.com/colonyops/issuectl/internal/data/db"
	"github.com/colonyops/issuectl/internal/data/stores"
)

// newTrackerServer fakes the auth surface of the tracker API: one account,
// one valid token.
func newTrackerServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["email"] != "alice@example.com" || req["password"] != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-live", "token_type": "bearer"})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-live" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "Alice", "email": "alice@example.com"})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// wire builds a fully wired App against the fake server, sharing the data
// directory so separate wirings model separate process runs.
func wire(t *testing.T, serverURL, dataDir string) *App {
	t.Helper()

	database, err := db.Open(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	creds := stores.NewCredentialStore(database)
	client := api.NewClient(serverURL, creds)
	session := auth.NewController(client.Auth(), creds)

	return NewApp(session, client, notify.NewBus(), nil, database)
}

func TestApp_login_survives_restart(t *testing.T) {
	ctx := context.Background()
	srv := newTrackerServer(t)
	dataDir := t.TempDir()

	// First run: sign in.
	first := wire(t, srv.URL, dataDir)
	user, err := first.Session.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, auth.StatusAuthenticated, first.Session.Status())

	// Second run: the stored credential resolves the session on its own.
	second := wire(t, srv.URL, dataDir)
	assert.Equal(t, auth.StatusUnresolved, second.Session.Status())
	second.Session.Resolve(ctx)
	assert.Equal(t, auth.StatusAuthenticated, second.Session.Status())

	current, ok := second.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Alice", current.Name)
}

func TestApp_logout_clears_across_restart(t *testing.T) {
	ctx := context.Background()
	srv := newTrackerServer(t)
	dataDir := t.TempDir()

	first := wire(t, srv.URL, dataDir)
	_, err := first.Session.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	first.Session.Logout(ctx)

	second := wire(t, srv.URL, dataDir)
	second.Session.Resolve(ctx)
	assert.Equal(t, auth.StatusUnauthenticated, second.Session.Status())
}

func TestApp_stale_credential_is_cleared_on_resolve(t *testing.T) {
	ctx := context.Background()
	srv := newTrackerServer(t)
	dataDir := t.TempDir()

	database, err := db.Open(dataDir)
	require.NoError(t, err)
	creds := stores.NewCredentialStore(database)
	require.NoError(t, creds.Set(ctx, "tok-expired"))
	require.NoError(t, database.Close())

	app := wire(t, srv.URL, dataDir)
	app.Session.Resolve(ctx)

	assert.Equal(t, auth.StatusUnauthenticated, app.Session.Status())

	_, err = stores.NewCredentialStore(app.DB).Get(ctx)
	assert.ErrorIs(t, err, auth.ErrNoCredential)
}
