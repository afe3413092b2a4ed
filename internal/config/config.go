package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is built once in main and passed by reference into the
// services that need it. There are no package-level fallbacks: a
// missing required variable fails startup instead of silently running
// with a default secret.
type Config struct {
	Port               string        `env:"PORT" env-default:"8080"`
	DBConnection       string        `env:"DB_CONNECTION" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-default:"microblog"`
	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET" env-required:"true"`
	AccessTokenTTL     time.Duration `env:"TOKEN_EXPIRATION" env-default:"1h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("config: TOKEN_EXPIRATION must be > 0")
	}
	return &cfg, nil
}
