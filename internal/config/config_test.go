package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: prod
storage:
  driver: sqlite
http_server:
  address: "0.0.0.0:8080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "localhost:3000", cfg.HTTPServer.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_SERVER_ADDR", "localhost:9999")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load(writeConfig(t, "env: dev\nhttp_server:\n  address: localhost:3000\n"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Addr)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Load(writeConfig(t, "storage:\n  driver: postgres\n"))
		assert.ErrorContains(t, err, "unknown storage driver")
	})

	t.Run("unknown env", func(t *testing.T) {
		_, err := Load(writeConfig(t, "env: qa\n"))
		assert.ErrorContains(t, err, "unknown env")
	})
}
