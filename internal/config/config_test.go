package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "7521", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15, cfg.ReadTimeout)
	assert.Equal(t, 30, cfg.WriteTimeout)
	assert.Equal(t, 60, cfg.IdleTimeout)
	assert.Equal(t, 10, cfg.ShutdownTimeout)
	assert.True(t, cfg.EnableMCP)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helpcenter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"8080\"\nlog_level: debug\nenable_mcp: false\n"), 0o600))
	t.Setenv("HELPCENTER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.EnableMCP)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HELPCENTER_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorContains(t, err, "invalid log_level")
}
