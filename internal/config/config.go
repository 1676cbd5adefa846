// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package config holds the settings of the datrie command line tool.
//
// Values are layered, later layers win: defaults, a JSON file,
// DATRIE_* environment variables and finally command line flags.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of all environment variables, e.g. DATRIE_LIMIT.
const EnvPrefix = "DATRIE_"

// log formats
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config for loading, checking and benchmarking a trie.
type Config struct {
	Input           string `json:"input"            mapstructure:"input"`
	Limit           int    `json:"limit"            mapstructure:"limit"`
	InitialCapacity int    `json:"initial_capacity" mapstructure:"initial_capacity"`
	MaxCapacity     int    `json:"max_capacity"     mapstructure:"max_capacity"`
	Verify          bool   `json:"verify"           mapstructure:"verify"`

	LogLevel      string `json:"log_level"        mapstructure:"log_level"`
	LogFormat     string `json:"log_format"       mapstructure:"log_format"`
	LogFile       string `json:"log_file"         mapstructure:"log_file"`
	LogMaxSizeMB  int    `json:"log_max_size_mb"  mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"  mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days" mapstructure:"log_max_age_days"`
}

// Default returns the built-in settings, at most 100000 keys are read.
func Default() Config {
	return Config{
		Input:         "-",
		Limit:         100_000,
		LogLevel:      "info",
		LogFormat:     FormatAuto,
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}

// Load reads the JSON file at path on top of the defaults.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	// Parse JSON data into a map
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if err := decode(raw, &cfg, false); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, nil
}

// ApplyEnv overrides the settings with environment variables named
// prefix plus the upper case key, e.g. DATRIE_LOG_LEVEL=debug.
// Variables with the prefix but no matching key are ignored.
func (c *Config) ApplyEnv(prefix string) error {
	return c.applyEnv(prefix, os.Environ())
}

func (c *Config) applyEnv(prefix string, environ []string) error {
	raw := make(map[string]any)

	for _, kv := range environ {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		raw[strings.ToLower(strings.TrimPrefix(name, prefix))] = val
	}

	if len(raw) == 0 {
		return nil
	}

	return errors.Wrap(decode(raw, c, true), "environment")
}

// decode the raw map into cfg, env values are strings and converted weakly.
func decode(raw map[string]any, cfg *Config, fromEnv bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		ErrorUnused:      !fromEnv,
		WeaklyTypedInput: fromEnv,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("input is empty, use - for stdin")
	case c.Limit < 0:
		return errors.Errorf("limit %d is negative", c.Limit)
	case c.InitialCapacity < 0:
		return errors.Errorf("initial_capacity %d is negative", c.InitialCapacity)
	case c.MaxCapacity < 0:
		return errors.Errorf("max_capacity %d is negative", c.MaxCapacity)
	case c.MaxCapacity > 0 && c.InitialCapacity > c.MaxCapacity:
		return errors.Errorf("initial_capacity %d exceeds max_capacity %d", c.InitialCapacity, c.MaxCapacity)
	case c.LogMaxSizeMB < 0 || c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0:
		return errors.New("log rotation limits must not be negative")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}

	switch c.LogFormat {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		return errors.Errorf("log_format %q is not one of auto, console, json", c.LogFormat)
	}

	return nil
}
