// Package config provides configuration management for the cardtraders
// infrastructure tools, with support for environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

// Config holds the tool configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Mongo  MongoConfig
	Market MarketConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string
}

// MongoConfig holds document-store configuration.
type MongoConfig struct {
	// URI is the full connection string (mongodb:// or mongodb+srv://).
	URI string
	// Database is the database name (default: cardtraders).
	Database string
}

// MarketConfig holds marketplace datastore configuration.
type MarketConfig struct {
	// URL is the Postgres DSN for the marketplace schema.
	URL string
}

// Load reads configuration with precedence:
// 1. Environment variables.
// 2. .env file (ignored if absent).
// 3. Default values.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the environment,
	// which gives us the precedence order above for free.
	_ = godotenv.Load(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getEnv("ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", ""),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", getEnv("MONGO_URI", "")),
			Database: getEnv("MONGODB_NAME", "cardtraders"),
		},
		Market: MarketConfig{
			URL: getEnv("MARKETDB_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "config validation failed")
	}

	return cfg, nil
}

// Validate checks that all configured values are valid. Connection strings
// are only checked for shape here; each command requires the one it needs
// via RequireMongo / RequireMarket.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Mongo.URI != "" && !strings.HasPrefix(c.Mongo.URI, "mongodb://") && !strings.HasPrefix(c.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf("invalid MONGODB_URI: must start with mongodb:// or mongodb+srv://")
	}

	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGODB_NAME cannot be empty")
	}

	if c.Market.URL != "" && !strings.HasPrefix(c.Market.URL, "postgres://") && !strings.HasPrefix(c.Market.URL, "postgresql://") {
		return fmt.Errorf("invalid MARKETDB_URL: must start with postgres:// or postgresql://")
	}

	return nil
}

// RequireMongo returns the Mongo configuration or a config error if the
// connection string is not set.
func (c *Config) RequireMongo() (MongoConfig, error) {
	if c.Mongo.URI == "" {
		return MongoConfig{}, errors.Config("MONGODB_URI is not set (export MONGODB_URI=\"mongodb+srv://...\")")
	}
	return c.Mongo, nil
}

// RequireMarket returns the marketplace datastore configuration or a config
// error if the DSN is not set.
func (c *Config) RequireMarket() (MarketConfig, error) {
	if c.Market.URL == "" {
		return MarketConfig{}, errors.Config("MARKETDB_URL is not set (export MARKETDB_URL=\"postgres://...\")")
	}
	return c.Market, nil
}

// getEnv returns the environment variable value or a default.
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
