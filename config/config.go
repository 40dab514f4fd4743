package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server struct {
		Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
		ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`

		// Origins allowed by the CORS middleware
		CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	// Redis is optional: with an empty address projections are cached in memory.
	Redis struct {
		Addr     string        `env:"REDIS_ADDR"`
		Password string        `env:"REDIS_PASSWORD"`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		TTL      time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	}

	RateLimit struct {
		Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"30"`
		Refill   time.Duration `env:"RATE_LIMIT_REFILL" envDefault:"1m"`
	}

	LLM struct {
		APIKey  string        `env:"OPENAI_API_KEY"`
		APIURL  string        `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
		Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
		Timeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"10s"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	ScenariosFile string `env:"SCENARIOS_FILE"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExplanationTimeout is the deadline for one model call. It stays below the
// server write timeout so the verdict fallback can still be written.
func (c *Config) ExplanationTimeout() time.Duration {
	limit := c.Server.WriteTimeout / 2
	if limit > 0 && (c.LLM.Timeout <= 0 || c.LLM.Timeout > limit) {
		return limit
	}
	return c.LLM.Timeout
}

// NewLogger builds the process logger from the Log section.
func NewLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithError(err).Warnf("unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
