package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_KEY", "")
	t.Setenv("AI_API_KEY", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, uint32(5), cfg.AIBreakerFails)
	assert.Equal(t, int64(20), cfg.RateLimitLimit)
	assert.True(t, cfg.MetricsEnabled)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
	assert.Empty(t, cfg.AIAPIKey)
}

func TestLoad_APIKeyFallbackOrder(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_KEY", "key-two")
	t.Setenv("AI_API_KEY", "key-three")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "key-two", cfg.AIAPIKey)
}

func TestLoad_ProductionRequiresOrigins(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cookfolio.app, https://www.cookfolio.app")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cookfolio.app", "https://www.cookfolio.app"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"AI_TIMEOUT":          "soon",
		"RATE_LIMIT_PERIOD":   "-1m",
		"DB_MAX_OPEN_CONNS":   "ten",
		"STORAGE_DRIVER":      "redis",
		"AI_BREAKER_FAILURES": "0",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetDatabaseURL_FromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_HOST", "db")
	t.Setenv("POSTGRESQL_USER", "cook")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("POSTGRESQL_DBNAME", "cookfolio")

	assert.Equal(t, "postgres://cook:p%40ss@db:5432/cookfolio?sslmode=disable", getDatabaseURL())
}
