package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_VALUE=42\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("CALC_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CALC_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "42", os.Getenv("CALC_TEST_VALUE"))
}

func TestLoadDotEnv_MissingFileIsTolerated(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, LoadDotEnv("local", ".env"))
	assert.NoError(t, LoadDotEnv("production", ".env"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}
