package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writes_to_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "issuectl.log")

	logger, closer, err := New("info", path)
	require.NoError(t, err)

	logger.Info().Msg("hello")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hello"`)
}

func TestNew_appends_across_opens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issuectl.log")

	logger, closer, err := New("info", path)
	require.NoError(t, err)
	logger.Info().Msg("first")
	closer()

	logger, closer, err = New("info", path)
	require.NoError(t, err)
	logger.Info().Msg("second")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_rejects_bad_level(t *testing.T) {
	_, _, err := New("chatty", "")
	assert.Error(t, err)
}
