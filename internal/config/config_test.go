package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("TOKEN_SECRET", "s3cret")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Token.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Token.Duration)
	assert.Equal(t, "webike-auth", cfg.Token.Issuer)
	assert.Equal(t, 5*time.Second, cfg.Directory.Timeout)
	assert.Zero(t, cfg.Directory.CacheTTL)
	assert.Equal(t, 10, cfg.Hasher.Cost)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.ListenAddr())
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_DURATION", "15m")
	t.Setenv("DIRECTORY_URL", "https://users.internal/api")
	t.Setenv("DIRECTORY_TIMEOUT", "750ms")
	t.Setenv("DIRECTORY_CACHE_TTL", "30s")
	t.Setenv("DIRECTORY_API_KEY", "key")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := New()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.Token.Duration)
	assert.Equal(t, "https://users.internal/api", cfg.Directory.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.Directory.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Directory.CacheTTL)
	assert.Equal(t, "key", cfg.Directory.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.ListenAddr())
	assert.Contains(t, cfg.DB.DSN(), "host=db")
	assert.Contains(t, cfg.DB.DSN(), "password=pw")
}

func TestNew_MissingSecret(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("TOKEN_SECRET", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestNew_RejectsBadDurations(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("TOKEN_SECRET", "s3cret")

	t.Setenv("TOKEN_DURATION", "0s")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("TOKEN_DURATION", "1h")
	t.Setenv("DIRECTORY_CACHE_TTL", "-1s")
	_, err = New()
	assert.Error(t, err)

	t.Setenv("DIRECTORY_CACHE_TTL", "soon")
	_, err = New()
	assert.Error(t, err)
}
