package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, "ws://localhost:3000/ws", cfg.SocketURL)
	assert.NotEmpty(t, cfg.SessionFile)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SKILLBARTER_SERVER_URL", "https://api.example.com")
	t.Setenv("SKILLBARTER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillbarter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: http://10.0.0.5:3000\nlog:\n  level: warn\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:3000", cfg.ServerURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "ws://localhost:3000/ws", cfg.SocketURL)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillbarter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://from-file\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SKILLBARTER_SERVER_URL", "http://from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.ServerURL)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
