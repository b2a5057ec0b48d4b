// Package config loads brandtint defaults from the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/brandtint/internal/brand"
	"github.com/jmylchreest/brandtint/internal/palette"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "BRANDTINT_"

// DefaultEnvFile is loaded when present in the working directory.
const DefaultEnvFile = ".env"

// Config holds defaults for CLI flags.
type Config struct {
	// Format is the default output format (table, json, tokens).
	Format string

	MaxProperties int
	MaxPalette    int
	MinConfidence palette.Confidence

	// Timeout bounds remote fetches.
	Timeout time.Duration

	// NoSwatch disables colour swatches in table output.
	NoSwatch bool

	// LogJSON switches the logger to JSON lines.
	LogJSON bool
}

// Default returns the built-in configuration.
func Default() *Config {
	limits := brand.DefaultLimits()
	return &Config{
		Format:        "table",
		MaxProperties: limits.MaxProperties,
		MaxPalette:    limits.MaxPalette,
		MinConfidence: limits.MinConfidence,
		Timeout:       10 * time.Second,
	}
}

// Limits returns the stream limits described by the config.
func (c *Config) Limits() brand.Limits {
	return brand.Limits{
		MaxProperties: c.MaxProperties,
		MaxPalette:    c.MaxPalette,
		MinConfidence: c.MinConfidence,
	}
}

// Load reads env files (DefaultEnvFile when none are given, missing files
// are ignored) and then overlays BRANDTINT_* variables on the defaults.
// Variables already set in the process environment win over env files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	get := func(name string) (string, bool) {
		value, ok := lookup(EnvPrefix + name)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}

	if v, ok := get("FORMAT"); ok {
		cfg.Format = strings.ToLower(v)
	}

	var err error
	if v, ok := get("MAX_PROPERTIES"); ok {
		if cfg.MaxProperties, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %sMAX_PROPERTIES: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("MAX_PALETTE"); ok {
		if cfg.MaxPalette, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %sMAX_PALETTE: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("MIN_CONFIDENCE"); ok {
		if cfg.MinConfidence, err = palette.ParseConfidence(v); err != nil {
			return nil, fmt.Errorf("invalid %sMIN_CONFIDENCE: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("TIMEOUT"); ok {
		if cfg.Timeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid %sTIMEOUT: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("NO_SWATCH"); ok {
		if cfg.NoSwatch, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid %sNO_SWATCH: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("LOG_JSON"); ok {
		if cfg.LogJSON, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid %sLOG_JSON: %w", EnvPrefix, err)
		}
	}

	return cfg, nil
}
