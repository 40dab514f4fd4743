package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, time.Minute, cfg.RateLimit.Refill)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "2h")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2*time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 5, cfg.RateLimit.Capacity)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "forever")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	logger := NewLogger(cfg)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Level = "loud"
	cfg.Log.Format = "json"
	logger = NewLogger(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestExplanationTimeout_StaysBelowWriteTimeout(t *testing.T) {
	cfg := &Config{}
	cfg.Server.WriteTimeout = 15 * time.Second

	cfg.LLM.Timeout = 30 * time.Second
	assert.Equal(t, 7500*time.Millisecond, cfg.ExplanationTimeout())

	cfg.LLM.Timeout = 0
	assert.Equal(t, 7500*time.Millisecond, cfg.ExplanationTimeout())

	cfg.LLM.Timeout = 3 * time.Second
	assert.Equal(t, 3*time.Second, cfg.ExplanationTimeout())

	cfg.Server.WriteTimeout = 0
	cfg.LLM.Timeout = 30 * time.Second
	assert.Equal(t, 30*time.Second, cfg.ExplanationTimeout())
}

func TestLoadConfig_DefaultExplanationTimeout(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Less(t, cfg.ExplanationTimeout(), cfg.Server.WriteTimeout)
}
