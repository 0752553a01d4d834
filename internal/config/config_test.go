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
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10240, cfg.AuditCompressThreshold)
	assert.True(t, cfg.SeedDemo)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_DEMO", "false")
	t.Setenv("WRITE_TIMEOUT", "5s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv sets process variables; clear them when the test ends.
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nAUDIT_COMPRESS_THRESHOLD=64\n"), 0o600))
	t.Setenv("AUDIT_COMPRESS_THRESHOLD", "")
	require.NoError(t, os.Unsetenv("AUDIT_COMPRESS_THRESHOLD"))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 64, cfg.AuditCompressThreshold)
}

func TestLoad_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
