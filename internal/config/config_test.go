package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
