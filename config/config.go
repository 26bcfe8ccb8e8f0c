package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the Beyond YLC API.
// Values come from environment variables; main loads a .env file first so
// local development needs no exported shell state. Secrets (database URL,
// JWT secret, Redis password) must only come from the environment.
type Config struct {
	// Server configuration
	Port string `env:"PORT" env-default:"8080"`
	Env  string `env:"ENVIRONMENT" env-default:"local"`

	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `env:"DATABASE_URL"`

	// JWTSecret verifies tokens minted by the hosted auth provider.
	JWTSecret string `env:"JWT_SECRET"`

	// Redis configuration for the session-scoped directory snapshots.
	// Leave RedisAddr empty to run without snapshot persistence.
	RedisAddr     string `env:"REDIS_ADDR" env-default:""`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	// SnapshotTTLMinutes bounds how long a persisted directory snapshot
	// survives without an explicit invalidation signal.
	SnapshotTTLMinutes int `env:"SNAPSHOT_TTL_MINUTES" env-default:"30"`
}

// Load reads configuration from the environment and validates the
// required fields.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	return &cfg, nil
}
