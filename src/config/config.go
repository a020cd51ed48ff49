// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding a config file path,
// used when no --config flag is given.
const EnvConfigFile = "TLS_CERT_TRACKER_CONFIG"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds tracker settings that can be supplied from a JSON or YAML
// file. Defaults are applied for any missing values; command-line flags
// override file values.
type Config struct {
	// Project is the default project to scan when no --project flag is given.
	Project string `json:"project" yaml:"project"`

	// Thresholds: severity window bounds in days.
	Thresholds struct {
		// SoonDays: remaining days below which a certificate is EXPIRING_SOON.
		SoonDays int `json:"soonDays" yaml:"soonDays"`
		// WarnDays: remaining days below which a certificate is WARNING.
		WarnDays int `json:"warnDays" yaml:"warnDays"`
	} `json:"thresholds" yaml:"thresholds"`

	// Fetch: settings for upstream certificate fetches.
	Fetch struct {
		// TimeoutSeconds bounds each certificate fetch.
		TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
		// Concurrency bounds in-flight fetches during a scan.
		Concurrency int `json:"concurrency" yaml:"concurrency"`
		// MaxRetries bounds backoff retries for transient upstream faults.
		MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
	} `json:"fetch" yaml:"fetch"`
}

// Default returns a Config with the built-in defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills zero values with the built-in defaults.
func (c *Config) applyDefaults() {
	if c.Thresholds.SoonDays == 0 {
		c.Thresholds.SoonDays = 10
	}
	if c.Thresholds.WarnDays == 0 {
		c.Thresholds.WarnDays = 30
	}
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 10
	}
	if c.Fetch.Concurrency == 0 {
		c.Fetch.Concurrency = 4
	}
	if c.Fetch.MaxRetries == 0 {
		c.Fetch.MaxRetries = 2
	}
}

// detectFormat picks the decoder from the file extension.
func detectFormat(path string) (configFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return configFormatJSON, nil
	case ".yaml", ".yml":
		return configFormatYAML, nil
	default:
		return 0, fmt.Errorf("config: unsupported file extension %q (use .json, .yaml, or .yml)", filepath.Ext(path))
	}
}

// Load reads a config file, falling back to the EnvConfigFile environment
// variable when path is empty. An empty path with no environment override
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	switch format {
	case configFormatJSON:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case configFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}
