package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("R2_ACCOUNT_ID", "")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "0 19 * * *", cfg.Schedule.OfferDigest)
	assert.False(t, cfg.MediaEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY", "key")
	t.Setenv("R2_SECRET_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "reisemlak")

	cfg := Load()

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.MediaEnabled())
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "yirmi")
	assert.Equal(t, 24, getEnvAsInt("JWT_TTL_HOURS", 24))
}
