// Package config reads the service configuration from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/alovak/cardform/scheme"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// Config is a configuration for the cardform application
type Config struct {
	HTTPAddr string
	// SchemesFile points at a YAML scheme table that replaces the built-in one.
	SchemesFile string
	// ExpiryTZ is an IANA timezone name used to decide whether a card has expired.
	ExpiryTZ string
	// FingerprintKey enables card fingerprints in validation responses when set.
	FingerprintKey string
	// CVVKey keys the demo CVVs printed by card_gen.
	CVVKey string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
		ExpiryTZ: "UTC",
		LogLevel: "info",
	}
}

// Load applies a .env file from envFile (if it exists) and then the process
// environment on top of DefaultConfig.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.SchemesFile = getenv("SCHEMES_FILE", cfg.SchemesFile)
	cfg.ExpiryTZ = getenv("EXPIRY_TZ", cfg.ExpiryTZ)
	cfg.FingerprintKey = getenv("FINGERPRINT_KEY", cfg.FingerprintKey)
	cfg.CVVKey = getenv("CVK_DEMO", cfg.CVVKey)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	return cfg, nil
}

// Schemes returns the scheme table selected by the configuration.
func (c *Config) Schemes() (*scheme.Table, error) {
	if c.SchemesFile == "" {
		return scheme.Default(), nil
	}
	return scheme.LoadFile(c.SchemesFile)
}

// Location resolves ExpiryTZ, defaulting to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.ExpiryTZ == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.ExpiryTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid EXPIRY_TZ %q: %w", c.ExpiryTZ, err)
	}
	return loc, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
