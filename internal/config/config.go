// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/cocosip/go-huffman-codec/internal/logger"
)

// Environment variables read by Load
const (
	EnvAddr         = "HUFF_ADDR"
	EnvMaxBodyBytes = "HUFF_MAX_BODY_BYTES"
	EnvLogLevel     = "HUFF_LOG_LEVEL"
	EnvGinMode      = "HUFF_GIN_MODE"
)

// Defaults applied when a variable is unset
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 32 << 20
	DefaultGinMode      = "release"
)

// Config holds the settings shared by the CLI and the HTTP service
type Config struct {
	Addr         string       // Listen address of the HTTP service
	MaxBodyBytes int64        // Largest request body accepted
	LogLevel     logger.Level // Minimum level written
	GinMode      string       // debug, release or test
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:         DefaultAddr,
		MaxBodyBytes: DefaultMaxBodyBytes,
		LogLevel:     logger.LevelInfo,
		GinMode:      DefaultGinMode,
	}

	if v := getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	if v := getenv(EnvMaxBodyBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", EnvMaxBodyBytes)
		}
		if n <= 0 {
			return nil, errors.Errorf("%s must be positive, got %d", EnvMaxBodyBytes, n)
		}
		cfg.MaxBodyBytes = n
	}

	level, err := logger.ParseLevel(getenv(EnvLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", EnvLogLevel)
	}
	cfg.LogLevel = level

	if v := getenv(EnvGinMode); v != "" {
		switch v {
		case "debug", "release", "test":
			cfg.GinMode = v
		default:
			return nil, errors.Errorf("%s must be debug, release or test, got %q", EnvGinMode, v)
		}
	}

	return cfg, nil
}
