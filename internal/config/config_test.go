package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Push.Timeout)
	assert.Equal(t, "pet-care-reminders", cfg.Log.App)
}

func TestLoad_YAMLThenEnvOverrides(t *testing.T) {
	dir := chdirTemp(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
db_dsn: postgres://from-yaml
shutdown_timeout: 3s
log:
  level: debug
  format: json
push:
  base_url: http://push.local
  timeout: 2s
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_DSN", "postgres://from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ALLOW_ALL_CAPABILITIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://from-env", cfg.DBDSN)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "http://push.local", cfg.Push.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Push.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.Plans.AllowAll)
}

func TestLoad_DotEnvIsRead(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600))

	// godotenv no pisa variables existentes; aseguramos que no esté seteada.
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Auth.JWTSecret)
	_ = os.Unsetenv("JWT_SECRET")
}

func TestLoad_UnknownYAMLFieldFails(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nope: 1\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_FILE", "")

	t.Run("port", func(t *testing.T) {
		t.Setenv("PORT", "http")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("PUSH_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("bool", func(t *testing.T) {
		t.Setenv("ALLOW_ALL_CAPABILITIES", "maybe")
		_, err := Load()
		require.Error(t, err)
	})
}
