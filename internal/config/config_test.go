package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("GORIDE_API_URL", "")
	t.Setenv("GORIDE_API_TIMEOUT", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, "https://prn-232-be.vercel.app/api/v1", cfg.API.URL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.HTTP.CookieSecure)
	assert.Equal(t, 7*24*time.Hour, cfg.HTTP.CookieMaxAge)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_IDLE_TTL", "5m")
	t.Setenv("GORIDE_API_URL", "http://localhost:4000/api/v1")
	t.Setenv("GORIDE_API_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, "http://localhost:4000/api/v1", cfg.API.URL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.HTTP.CookieSecure)
}

func TestNew_Rejects(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Setenv("TOKEN_SECRET", "")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("SESSION_BACKEND", "etcd")
	_, err = New()
	assert.Error(t, err)
}
