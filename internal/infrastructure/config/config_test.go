package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Session.BcryptCost)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 4, cfg.Notify.Workers)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "9090",
		"ENV":            "production",
		"JWT_SECRET":     "s3cret",
		"SESSION_TTL":    "90m",
		"REDIS_ADDR":     "localhost:6379",
		"REDIS_DB":       "2",
		"NOTIFY_WORKERS": "8",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 8, cfg.Notify.Workers)
}

func TestLoadWith_ProductionNeedsSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV": "production",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadWith_RejectsNonPositiveTTL(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_TTL": "0s",
	}))
	require.Error(t, err)
}
