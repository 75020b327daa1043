package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORTFOLIO_HTTP_ADDR",
		"PORTFOLIO_SECRET_KEY",
		"PORTFOLIO_DB_PATH",
		"PORTFOLIO_ADMIN_USERNAME",
		"PORTFOLIO_ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "portfolio.db", cfg.Database.Path)
	assert.Equal(t, DefaultAdminUsername, cfg.Admin.Username)
	assert.Equal(t, DefaultAdminPassword, cfg.Admin.DefaultPassword)
	assert.True(t, cfg.UsingFallbackSecret())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("PORTFOLIO_SECRET_KEY", "prod-secret")
	t.Setenv("PORTFOLIO_ADMIN_USERNAME", "direction")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddr)
	assert.Equal(t, "prod-secret", cfg.Server.SecretKey)
	assert.Equal(t, "direction", cfg.Admin.Username)
	assert.False(t, cfg.UsingFallbackSecret())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfigFile(t, `
server:
  http_addr: "127.0.0.1:3000"
  secret_key: "file-secret"
database:
  path: "/var/lib/portfolio/site.db"
admin:
  username: "direction"
  default_password: "provisoire"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.HTTPAddr)
	assert.Equal(t, "file-secret", cfg.Server.SecretKey)
	assert.Equal(t, "/var/lib/portfolio/site.db", cfg.Database.Path)
	assert.Equal(t, "direction", cfg.Admin.Username)
	assert.Equal(t, "provisoire", cfg.Admin.DefaultPassword)
}

func TestLoad_FileEnvExpansion(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_SECRET", "expanded-secret")
	path := writeConfigFile(t, `
server:
  secret_key: "${TEST_SECRET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Server.SecretKey)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORTFOLIO_SECRET_KEY", "env-secret")
	path := writeConfigFile(t, `
server:
  secret_key: "file-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Server.SecretKey)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	clearEnv(t)
	loaded, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, loaded.Validate())
}
