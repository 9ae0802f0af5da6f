package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.yaml")
	err := os.WriteFile(path, []byte(`
env: "local"
http_server:
  address: "localhost:9000"
backend:
  base_url: "http://backend.test/api"
  timeout: 3s
cors:
  allowed_origins: ["http://a.test", "http://b.test"]
admin_login: "admin"
admin_pass: "secret"
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "http://backend.test/api", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://env.test/api")
	t.Setenv("ENV", "dev")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "http://env.test/api", cfg.Backend.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_MissingBackend(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")
	require.NoError(t, os.Unsetenv("BACKEND_BASE_URL"))

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
