// Package api is the HTTP client for the issue-tracker service. It attaches
// the stored bearer credential to requests and maps response statuses onto a
// small error taxonomy consumed by the session controller and commands.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/issuectl/internal/core/logging"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the bearer credential attached to requests. An empty
// token sends the request unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// Client is the base HTTP client. Per-resource services hang off it.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger

	auth     *AuthService
	projects *ProjectsService
	issues   *IssuesService
	comments *CommentsService
}

// NewClient creates a client for the service at baseURL. tokens may be nil
// for a client that only performs unauthenticated calls.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     logging.Component("api"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.auth = &AuthService{client: c}
	c.projects = &ProjectsService{client: c}
	c.issues = &IssuesService{client: c}
	c.comments = &CommentsService{client: c}
	return c
}

// Auth returns the authentication endpoints.
func (c *Client) Auth() *AuthService { return c.auth }

// Projects returns the project endpoints.
func (c *Client) Projects() *ProjectsService { return c.projects }

// Issues returns the issue endpoints.
func (c *Client) Issues() *IssuesService { return c.issues }

// Comments returns the comment endpoints.
func (c *Client) Comments() *CommentsService { return c.comments }

// errorBody matches the service's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// do executes a JSON request. body is marshaled when non-nil; a 2xx response
// is decoded into out when out is non-nil. query may be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read credential: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
		return nil
	}

	var detail errorBody
	_ = json.NewDecoder(resp.Body).Decode(&detail)

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("detail", detail.Detail).
		Msg("request failed")

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{Detail: detailOr(detail.Detail, "validation failed")}
	default:
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}
}

func detailOr(detail, fallback string) string {
	if detail == "" {
		return fallback
	}
	return detail
}
