package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/jobboard")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.RegisterTokenTTL)
	assert.Equal(t, defaultGoogleJWKSURL, cfg.GoogleJWKSURL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.EnforceUpdateOwnership)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("REGISTER_TOKEN_TTL", "12h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENFORCE_UPDATE_OWNERSHIP", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, 12*time.Hour, cfg.RegisterTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.EnforceUpdateOwnership)
}

func TestValidateRequiredKeys(t *testing.T) {
	cases := []struct {
		name  string
		unset string
	}{
		{"missing jwt secret", "JWT_SECRET"},
		{"missing database url", "DATABASE_URL"},
		{"missing google client id", "GOOGLE_CLIENT_ID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.unset, "")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
