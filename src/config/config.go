// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "ODOO_RPC_CONFIG_FILE"
	EnvPassword   = "ODOO_RPC_PASSWORD"
)

// DefaultTimeoutSeconds is the HTTP timeout applied when none is configured.
const DefaultTimeoutSeconds = 30

// ErrInvalidConfig is wrapped by schema validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
	// formatTOML represents TOML configuration format (.toml)
	formatTOML
)

// Config represents the client configuration structure.
type Config struct {
	// Server: where to connect
	Server struct {
		// Host: base URL of the Odoo server, e.g. https://demo.odoo.com
		Host string `json:"host,omitempty" yaml:"host,omitempty" toml:"host"`
		// Database: the tenant to authenticate against
		Database string `json:"database,omitempty" yaml:"database,omitempty" toml:"database"`
		// Timeout: HTTP timeout in seconds for each exchange
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds" toml:"timeoutSeconds"`
	} `json:"server" yaml:"server" toml:"server"`

	// Auth: credentials (the password can also be set via ODOO_RPC_PASSWORD)
	Auth struct {
		Login    string `json:"login,omitempty" yaml:"login,omitempty" toml:"login"`
		Password string `json:"password,omitempty" yaml:"password,omitempty" toml:"password"`
	} `json:"auth" yaml:"auth" toml:"auth"`

	// RateLimit: optional client-side throttle, zero disables it
	RateLimit struct {
		RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond" toml:"requestsPerSecond"`
		Burst             int     `json:"burst" yaml:"burst" toml:"burst"`
	} `json:"rateLimit" yaml:"rateLimit" toml:"rateLimit"`
}

// TimeoutDuration returns the configured timeout as a [time.Duration].
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Server.Timeout) * time.Second
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into config according to f.
func unmarshal(data []byte, config *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse TOML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Default returns a configuration holding only the built-in defaults.
func Default() *Config {
	config := &Config{}
	config.Server.Timeout = DefaultTimeoutSeconds
	return config
}

// Load builds the configuration from defaults, the file at path and the environment.
//
// Configuration Priority:
//  1. Default values are set
//  2. ODOO_RPC_CONFIG_FILE environment variable is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//  4. ODOO_RPC_PASSWORD overrides an empty password
//
// A non-positive timeout from the file falls back to the default. The result
// is validated before it is returned.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshal(data, config, detectFormat(path)); err != nil {
			return nil, err
		}

		if config.Server.Timeout <= 0 {
			config.Server.Timeout = DefaultTimeoutSeconds
		}
	}

	if config.Auth.Password == "" {
		config.Auth.Password = os.Getenv(EnvPassword)
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}
