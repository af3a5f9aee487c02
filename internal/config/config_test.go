package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "mongodb-explorer", cfg.Mongo.Database)
	assert.Equal(t, 10, cfg.Mongo.MaxPoolSize)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GSTREX_SERVER_PORT", ":9090")
	t.Setenv("GSTREX_MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("GSTREX_MONGO_DATABASE", "ledger")
	t.Setenv("GSTREX_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("GSTREX_RATE_LIMIT_REQUESTS_PER_MINUTE", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "ledger", cfg.Mongo.Database)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GSTREX_SERVER_PORT", ":6000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Port)
}
