package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Console — настройки офлайн-игры в терминале. Серверные секции
// (HTTP, Redis, JWT) сюда не входят и не проверяются.
type Console struct {
	Log struct {
		Format string     `env:"LOG_FORMAT" envDefault:"text"` // text|json
		Level  slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
	}

	Seed int64 `env:"GAME_SEED" envDefault:"0"` // 0 => crypto/rand
}

func LoadConsoleFromEnv() (Console, error) {
	var c Console
	if err := env.Parse(&c); err != nil {
		return Console{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Console{}, err
	}
	return c, nil
}

func (c Console) Validate() error {
	return validateLogFormat(c.Log.Format)
}

func (c Console) NewLogger(w io.Writer) *slog.Logger {
	return newLogger(w, c.Log.Format, c.Log.Level)
}
