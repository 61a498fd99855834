package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultJWTSecret = "dev-secret-change-me"

// Config describes all runtime settings for the server and the console game.
//
// Load once in main, validate, pass further explicitly.
type Config struct {
	Env string `env:"APP_ENV" envDefault:"dev"` // dev|stage|prod

	Log struct {
		Format string     `env:"LOG_FORMAT" envDefault:"text"` // text|json
		Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	}

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"0s"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	// Redis пустой => раунды хранятся только в памяти процесса.
	Redis struct {
		Addr     string        `env:"REDIS_ADDR"`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		RoundTTL time.Duration `env:"ROUND_TTL" envDefault:"24h"`
	}

	Auth struct {
		Secret   string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
		TokenTTL time.Duration `env:"JWT_TTL" envDefault:"24h"`
	}

	Game struct {
		DefaultLength int   `env:"GAME_DEFAULT_LENGTH" envDefault:"4"`
		Seed          int64 `env:"GAME_SEED" envDefault:"0"` // 0 => crypto/rand
	}
}

func LoadFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("HTTP addr is empty")
	}
	if c.Auth.Secret == "" {
		return errors.New("JWT_SECRET is empty")
	}
	if c.Env != "dev" && c.Auth.Secret == defaultJWTSecret {
		return fmt.Errorf("refuse to run with default JWT_SECRET in %s", c.Env)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Redis.RoundTTL < 0 {
		return fmt.Errorf("ROUND_TTL must not be negative, got %s", c.Redis.RoundTTL)
	}
	if c.Game.DefaultLength < 1 || c.Game.DefaultLength > 9 {
		return fmt.Errorf("GAME_DEFAULT_LENGTH=%d out of range 1..9", c.Game.DefaultLength)
	}
	return validateLogFormat(c.Log.Format)
}

func validateLogFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", format)
	}
	return nil
}
