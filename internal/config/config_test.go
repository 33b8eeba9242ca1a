package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "Batrack", cfg.AppName)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionExpiry)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.UseS3())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "BatShop")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_EXPIRY", "24h")

	cfg := Load()
	assert.Equal(t, "BatShop", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SessionExpiry)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 168*time.Hour, cfg.SessionExpiry)
}

func TestUseS3(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.UseS3())

	cfg.S3Bucket = "bat-images"
	assert.True(t, cfg.UseS3())
}

func TestSanitized_ExcludesSecrets(t *testing.T) {
	cfg := &Config{
		AppName:       "Batrack",
		AppEnv:        "production",
		SessionSecret: "super-secret",
		S3SecretKey:   "aws-secret",
		SentryDSN:     "https://sentry.example",
	}

	safe := cfg.Sanitized()
	assert.Equal(t, "Batrack", safe.AppName)
	assert.Equal(t, "production", safe.AppEnv)
	assert.Empty(t, safe.SessionSecret)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.SentryDSN)
}
