// Package stores contains SQLite-backed implementations of the core store
// interfaces.
package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/issuectl/internal/core/auth"
	"github.com/colonyops/issuectl/internal/data/db"
)

// credentialKey is the well-known kv key holding the bearer token.
const credentialKey = "access_token"

// CredentialStore persists the bearer credential in the local database. The
// value is opaque to this layer.
type CredentialStore struct {
	db *db.DB
}

var _ auth.CredentialStore = (*CredentialStore)(nil)

// NewCredentialStore creates a SQLite-backed credential store.
func NewCredentialStore(database *db.DB) *CredentialStore {
	return &CredentialStore{db: database}
}

// Get returns the stored credential, or auth.ErrNoCredential if none is set.
func (s *CredentialStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.Conn().QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, credentialKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", auth.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}
	return value, nil
}

// Set stores the credential, replacing any previous value.
func (s *CredentialStore) Set(ctx context.Context, credential string) error {
	_, err := s.db.Conn().ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		credentialKey, credential, time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an empty store is a no-op.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if _, err := s.db.Conn().ExecContext(ctx,
		`DELETE FROM kv WHERE key = ?`, credentialKey,
	); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Token implements the API client's token source. A missing credential yields
// an empty token so the request goes out unauthenticated.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	credential, err := s.Get(ctx)
	if errors.Is(err, auth.ErrNoCredential) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return credential, nil
}
