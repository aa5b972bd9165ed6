// SPDX-License-Identifier: MIT

// Package config loads pathboard settings from an optional YAML file and
// PATHBOARD_* environment overrides.
//
// Lookup order for the file: the explicit path, then $PATHBOARD_CONFIG,
// then ./pathboard.yaml. A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel validation errors.
var (
	ErrMaxNodes      = errors.New("config: editor.max_nodes must be at least 1")
	ErrWeightDivisor = errors.New("config: editor.weight_divisor must be positive")
	ErrStepDelay     = errors.New("config: editor.step_delay must not be negative")
	ErrLogFormat     = errors.New("config: logging.format must be text or json")
)

const (
	defaultMaxNodes      = 12
	defaultWeightDivisor = 10.0
	defaultStepDelay     = 600 * time.Millisecond
	defaultAddr          = ":8080"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"

	// DefaultFile is looked up in the working directory when no path is given.
	DefaultFile = "pathboard.yaml"
)

// Config aggregates all settings.
type Config struct {
	Editor  EditorConfig  `yaml:"editor"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// EditorConfig bounds and paces the editing session.
type EditorConfig struct {
	MaxNodes      int           `yaml:"max_nodes"`
	WeightDivisor float64       `yaml:"weight_divisor"`
	StepDelay     time.Duration `yaml:"step_delay"`
}

// ServerConfig governs the HTTP front end.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			MaxNodes:      defaultMaxNodes,
			WeightDivisor: defaultWeightDivisor,
			StepDelay:     defaultStepDelay,
		},
		Server:  ServerConfig{Addr: defaultAddr},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// Load resolves the config file, applies env overrides and validates.
// It returns the file actually read ("" when none was found).
func Load(path string) (Config, string, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("PATHBOARD_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, path, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		path = ""
	default:
		return Config{}, path, fmt.Errorf("read config: %w", err)
	}

	if err = cfg.applyEnv(); err != nil {
		return Config{}, path, err
	}
	cfg.applyDefaults()

	if err = cfg.Validate(); err != nil {
		return Config{}, path, err
	}

	return cfg, path, nil
}

// applyDefaults fills zero values left by a partial file.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PATHBOARD_MAX_NODES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PATHBOARD_MAX_NODES %q: %w", v, err)
		}
		c.Editor.MaxNodes = n
	}
	if v := os.Getenv("PATHBOARD_WEIGHT_DIVISOR"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid PATHBOARD_WEIGHT_DIVISOR %q: %w", v, err)
		}
		c.Editor.WeightDivisor = f
	}
	if v := os.Getenv("PATHBOARD_STEP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PATHBOARD_STEP_DELAY: %w", err)
		}
		c.Editor.StepDelay = d
	}
	if v := os.Getenv("PATHBOARD_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PATHBOARD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PATHBOARD_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PATHBOARD_LOG_INCLUDE_CALLER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PATHBOARD_LOG_INCLUDE_CALLER %q: %w", v, err)
		}
		c.Logging.IncludeCaller = b
	}

	return nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.Editor.MaxNodes < 1 {
		return fmt.Errorf("%w: %d", ErrMaxNodes, c.Editor.MaxNodes)
	}
	if !(c.Editor.WeightDivisor > 0) {
		return fmt.Errorf("%w: %v", ErrWeightDivisor, c.Editor.WeightDivisor)
	}
	if c.Editor.StepDelay < 0 {
		return fmt.Errorf("%w: %s", ErrStepDelay, c.Editor.StepDelay)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrLogFormat, c.Logging.Format)
	}

	return nil
}
