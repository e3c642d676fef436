package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
)

func setPostgresEnv(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("POSTGRES_DB", "coffee_store")
	t.Setenv("POSTGRES_SSL_MODE", "disable")
	t.Setenv("POSTGRES_MAX_CONNS", "10")
	t.Setenv("POSTGRES_MIN_CONNS", "2")
	t.Setenv("POSTGRES_MAX_CONN_LIFETIME", "1h")
	t.Setenv("POSTGRES_MAX_CONN_IDLE_TIME", "30m")
}

func TestNew(t *testing.T) {
	type Config struct {
		Log      config.Log
		HTTP     config.HTTP
		Postgres config.Postgres
		Relay    config.Relay
	}

	t.Run("Should load defaults and required values", func(t *testing.T) {
		setPostgresEnv(t)
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.True(t, cfg.HTTP.Swagger)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CorsAllowedOrigins)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, "localhost", cfg.Postgres.Host)
		assert.Equal(t, 5432, cfg.Postgres.Port)
		assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
		assert.Equal(t, time.Hour, cfg.Postgres.MaxConnLifetime)
		assert.Equal(t, uint32(100), cfg.Relay.BatchSize)
		assert.Equal(t, time.Second, cfg.Relay.Interval)
	})

	t.Run("Should fail when required env is missing", func(t *testing.T) {
		_, err := config.New[Config]()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})

	t.Run("Should fail on unknown log format", func(t *testing.T) {
		setPostgresEnv(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.New[Config]()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})

	t.Run("Should fail validation on bad ssl mode", func(t *testing.T) {
		setPostgresEnv(t)
		t.Setenv("POSTGRES_SSL_MODE", "sometimes")

		_, err := config.New[Config]()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validate config")
		assert.Contains(t, err.Error(), "Config.Postgres.SSLMode: must be one of")
	})

	t.Run("Should fail validation when min conns exceed max conns", func(t *testing.T) {
		setPostgresEnv(t)
		t.Setenv("POSTGRES_MIN_CONNS", "20")

		_, err := config.New[Config]()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Config.Postgres.MinConns")
	})
}

func TestLogFormat(t *testing.T) {
	var f config.LogFormat
	require.NoError(t, f.UnmarshalText([]byte("json")))
	assert.Equal(t, config.LogFormatJSON, f)

	text, err := config.LogFormatText.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "TEXT", string(text))

	assert.Error(t, config.LogFormat(9).Validate())
}
