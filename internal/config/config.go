// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/johndosdos/chirp/internal/auth"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	DBURL             string        `envconfig:"DB_URL"`
	StorageDriver     string        `envconfig:"STORAGE_DRIVER" default:"postgres"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	PasswordHashing   string        `envconfig:"PASSWORD_HASHING" default:"plain"`
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"0"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads the environment into a Config and checks that the values fit
// together. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverPostgres:
		if c.DBURL == "" {
			return errors.New("config: DB_URL environment variable is not set")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.PasswordHashing {
	case auth.HashingPlain, auth.HashingArgon2id:
	default:
		return fmt.Errorf("config: unknown PASSWORD_HASHING %q", c.PasswordHashing)
	}

	if c.RateLimitRequests < 0 {
		return errors.New("config: RATE_LIMIT_REQUESTS must not be negative")
	}
	if c.RateLimitRequests > 0 && c.RateLimitWindow <= 0 {
		return errors.New("config: RATE_LIMIT_WINDOW must be positive")
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel, accepting the names slog prints (debug, info,
// warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return level, nil
}
