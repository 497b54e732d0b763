package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.AccountCacheTTL)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=postgres sslmode=disable", cfg.PostgresDSN())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("ACCOUNT_CACHE_TTL", "5m")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 5*time.Minute, cfg.AccountCacheTTL)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=social\nLOG_FORMAT=console\n"), 0o600))
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "social", cfg.DBName)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}
