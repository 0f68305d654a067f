package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FORM_STATE_STORE", "")
	t.Setenv("FORM_STATE_TTL_MINUTES", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.FormStateStore)
	assert.Equal(t, 30, cfg.FormStateTTLMinutes)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FORM_LOCALE", "EN")
	t.Setenv("FORM_STATE_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RATE_LIMIT_SUBMIT_THRESHOLD", "5")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "en", cfg.FormLocale)
	assert.Equal(t, "redis", cfg.FormStateStore)
	assert.Equal(t, 5, cfg.RateLimitSubmitThreshold)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.IsProduction())
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	t.Setenv("SOME_BOOL", "maybe")

	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
	assert.False(t, getEnvBool("SOME_BOOL", false))
	assert.Equal(t, "x", getEnv("DEFINITELY_UNSET_KEY_FOR_TEST", "x"))
}

func TestLoadConfigClampsRateLimits(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "0")
	t.Setenv("RATE_LIMIT_SUBMIT_THRESHOLD", "-3")
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 30, cfg.RateLimitSubmitThreshold)
	assert.Equal(t, 300, cfg.RateLimitGlobalThreshold)
}

func TestLoadConfigTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,192.168.0.0/16 ")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.TrustedProxies)
}
