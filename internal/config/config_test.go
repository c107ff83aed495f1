package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "job-portal-api", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, 24, cfg.Auth.TokenTTLHours)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, "uploads", cfg.Upload.Dir)
	require.Equal(t, "/uploads", cfg.Upload.PublicRoute)
	require.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "0")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "AUTH_TOKEN_TTL_HOURS")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("APP_PORT", "9001")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "48")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9001", cfg.App.Port)
	require.Equal(t, 48*time.Hour, cfg.Auth.TokenTTL())
	require.Equal(t, 3, cfg.Redis.DB)
}

func TestCORSOrigins(t *testing.T) {
	cfg := CORSConfig{AllowOrigins: "http://localhost:8081, https://portal.example.com ,"}
	require.Equal(t, []string{"http://localhost:8081", "https://portal.example.com"}, cfg.Origins())
}
