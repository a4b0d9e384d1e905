package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/colonyops/issuectl/internal/core/auth"
)

// AuthService groups the authentication endpoints.
type AuthService struct {
	client *Client
}

var _ auth.API = (*AuthService)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email/password pair for a bearer credential. A 401 from
// this endpoint means the pair was wrong, not that a credential was stale, so
// it is reported as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := s.client.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if errors.Is(err, ErrUnauthorized) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Signup registers a new account. The created profile is discarded; callers
// sign in separately.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	return s.client.do(ctx, http.MethodPost, "/api/auth/signup", nil, signupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil)
}

// Me fetches the profile of the user the attached credential belongs to.
func (s *AuthService) Me(ctx context.Context) (auth.User, error) {
	var user auth.User
	if err := s.client.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return auth.User{}, err
	}
	return user, nil
}

// Logout invalidates the current session server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
