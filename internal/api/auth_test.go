package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource returning a fixed credential.
type staticTokens string

func (s staticTokens) Token(context.Context) (string, error) {
	return string(s), nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns credential", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice@example.com", req["email"])
			assert.Equal(t, "password123", req["password"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token": "tok-abc",
				"token_type":   "bearer",
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, nil)
		token, err := client.Auth().Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tok-abc", token)
	})

	t.Run("wrong password maps to ErrInvalidCredentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, nil)
		_, err := client.Auth().Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches bearer token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":    1,
				"name":  "Alice",
				"email": "alice@example.com",
			})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, staticTokens("tok-abc"))
		user, err := client.Auth().Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, staticTokens(""))
		_, err := client.Auth().Me(ctx)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("no token sends no auth header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, staticTokens(""))
		_, err := client.Auth().Me(ctx)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/auth/signup", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 2, "name": "Bob", "email": "bob@example.com"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, nil)
		require.NoError(t, client.Auth().Signup(ctx, "Bob", "bob@example.com", "hunter22"))
	})

	t.Run("duplicate email maps to ValidationError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, nil)
		err := client.Auth().Signup(ctx, "Bob", "bob@example.com", "hunter22")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Email already registered", verr.Detail)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/logout", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticTokens("tok-abc"))
	assert.NoError(t, client.Auth().Logout(ctx))
}

func TestClient_transport_error_is_wrapped(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, nil)
	_, err := client.Auth().Me(ctx)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized), "transport failure is not an auth failure")
}

func TestClient_unexpected_status_maps_to_APIError(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.Auth().Me(ctx)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Detail)
}
