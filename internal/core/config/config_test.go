package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_reads_values(t *testing.T) {
	path := writeConfig(t, "server: https://tracker.example.com\ntimeout_seconds: 5\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "https://tracker.example.com", cfg.Server)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_invalid_server_url(t *testing.T) {
	path := writeConfig(t, "server: not-a-url\n")

	_, err := Load(path, "")
	assert.ErrorContains(t, err, "invalid server url")
}

func TestLoad_invalid_yaml(t *testing.T) {
	path := writeConfig(t, "server: [unclosed\n")

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestLoad_zero_timeout_falls_back(t *testing.T) {
	path := writeConfig(t, "server: http://localhost:8000\ntimeout_seconds: 0\n")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}
