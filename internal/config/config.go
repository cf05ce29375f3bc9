// Package config loads the optional YAML tuning file of the aoc2021 CLI.
//
// Every field has a default, so a missing file is not an error: Load("")
// returns Default(). Command-line flags override file values.
//
// Example file:
//
//	log_level: debug
//	search:
//	  max_priority: 50000
//	  unfold: true
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadLogLevel indicates a log_level other than debug, info, warn or error.
	ErrBadLogLevel = errors.New("config: unknown log level")

	// ErrBadMaxPriority indicates a negative search.max_priority.
	ErrBadMaxPriority = errors.New("config: search.max_priority must be non-negative")
)

// Config is the top-level configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Search tunes the burrow solver.
	Search SearchConfig `yaml:"search"`
}

// SearchConfig tunes the heuristic search.
type SearchConfig struct {
	// MaxPriority prunes frontier entries whose cost+heuristic exceeds it.
	// 0 disables pruning.
	MaxPriority int64 `yaml:"max_priority"`

	// Unfold also solves the depth-4 variant of a depth-2 diagram.
	Unfold bool `yaml:"unfold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Search: SearchConfig{
			MaxPriority: 0,
			Unfold:      true,
		},
	}
}

// Load reads the YAML file at path over Default() and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Search.MaxPriority < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxPriority, c.Search.MaxPriority)
	}

	return nil
}

// ParseLevel maps a level name (case-insensitive) to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, name)
}
