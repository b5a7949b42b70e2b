package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all externally tunable settings. The defaults are for local
// development only; SESSION_SECRET in particular must be overridden in any
// real deployment.
type Config struct {
	Port          string        `env:"PORT,           default=3000"`
	Env           string        `env:"ENV,            default=development"`
	SessionSecret string        `env:"SESSION_SECRET, default=dev-super-app-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=8h"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`

	DB    DBConfig
	Redis RedisConfig
}

type DBConfig struct {
	Path string `env:"DB_PATH, default=data/app.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Production reports whether the service runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}
