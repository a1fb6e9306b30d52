package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	for _, key := range []string{"PORT", "DATABASE_PATH", "APP_ENV", "CORS_ORIGIN"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "./auth.db", cfg.DatabasePath)
	require.Equal(t, "k", cfg.JWTSecret)
	require.True(t, cfg.Development)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
	require.False(t, cfg.Development)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
