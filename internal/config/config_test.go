package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withDotEnv(t *testing.T, path string) {
	t.Helper()
	old := DotEnvPath
	DotEnvPath = path
	t.Cleanup(func() { DotEnvPath = old })
}

func TestLoadConfigDefaults(t *testing.T) {
	withDotEnv(t, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ojt_sid", cfg.Server.CookieName)
	assert.Equal(t, "token", cfg.Session.TokenKey)
	assert.Equal(t, "/login", cfg.Session.LoginPath)
	assert.Equal(t, BackendMemory, cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, time.Duration(0), cfg.APITimeout())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	withDotEnv(t, "")
	path := writeFile(t, "config.yaml", `
server:
  port: "9090"
  mode: production
api:
  base_url: https://ojt.example.edu/api
  timeout: 10s
session:
  backend: redis
  redis:
    addr: redis:6379
    db: 2
logging:
  level: debug
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://ojt.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout())
	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, "redis:6379", cfg.Session.Redis.Addr)
	assert.Equal(t, 3, cfg.Session.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigDotEnv(t *testing.T) {
	withDotEnv(t, writeFile(t, ".env", "OJT_API_BASE_URL=http://api.local:5000/api\nSESSION_TOKEN_KEY=ojt_token\n"))
	t.Cleanup(func() {
		_ = os.Unsetenv("OJT_API_BASE_URL")
		_ = os.Unsetenv("SESSION_TOKEN_KEY")
	})

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://api.local:5000/api", cfg.API.BaseURL)
	assert.Equal(t, "ojt_token", cfg.Session.TokenKey)
}

func TestLoadConfigInvalid(t *testing.T) {
	withDotEnv(t, "")

	tests := []struct {
		name string
		yaml string
	}{
		{name: "relative base url", yaml: "api:\n  base_url: /api\n"},
		{name: "bad timeout", yaml: "api:\n  timeout: soon\n"},
		{name: "unknown backend", yaml: "session:\n  backend: sqlite\n"},
		{name: "redis without addr", yaml: "session:\n  backend: redis\n  redis:\n    addr: \"\"\n"},
		{name: "broken yaml", yaml: "server: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "config.yaml", tt.yaml))
			assert.Error(t, err)
		})
	}
}
