package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/anuj140/hireengine/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "jobs")
	t.Setenv("MAINTENANCE_INTERVAL", "10m")
	t.Setenv("PASSWORD_ARGON2_MEMORY_KIB", "32768")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryPeriod)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Policy.FreePlanValidity)
	assert.Equal(t, 10*time.Minute, cfg.Policy.MaintenanceInterval)
	assert.Len(t, cfg.Server.AllowedOrigins, 3)
	assert.Contains(t, cfg.Database.DSN(), "dbname=jobs")
	assert.Equal(t, uint32(32768), cfg.Hashing.Argon2MemoryKiB)
	assert.Equal(t, uint32(1), cfg.Hashing.Argon2Time)
	assert.Equal(t, uint8(4), cfg.Hashing.Argon2Threads)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.Load()
	assert.Error(t, err)
}
