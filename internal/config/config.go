// Package config loads Easel configuration from TOML files and watches
// them for live reload.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration loading.
var (
	// ErrMaxActions indicates a non-positive history bound.
	ErrMaxActions = errors.New("history.max_actions must be at least 1")

	// ErrLogLevel indicates an unrecognized log level name.
	ErrLogLevel = errors.New("unknown log level")
)

// Config is the application configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
	Editor  EditorConfig  `toml:"editor"`
}

// HistoryConfig configures the undo/redo timeline.
type HistoryConfig struct {
	// MaxActions bounds the committed timeline; the oldest action is
	// dropped once the bound is exceeded.
	MaxActions int `toml:"max_actions"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// EditorConfig configures editor behavior.
type EditorConfig struct {
	// Autosave writes the scene document back after every commit.
	Autosave bool `toml:"autosave"`

	// ScenePath is the drawing to open at startup.
	ScenePath string `toml:"scene"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{MaxActions: 200},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads configuration from path, applied over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that would misconfigure the
// engine.
func (c Config) Validate() error {
	if c.History.MaxActions < 1 {
		return ErrMaxActions
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}
	return nil
}
