package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "100-M", cfg.RateLimit.Rate)
	assert.False(t, cfg.HTTP.TrustProxy)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/campaigns?sslmode=disable")
	t.Setenv("PSQL_SEED", "true")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("COUNTRIES_PATH", "/etc/countries.json")
	t.Setenv("HTTP_TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Psql.Seed)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "/etc/countries.json", cfg.CountriesPath)
	assert.True(t, cfg.HTTP.TrustProxy)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
