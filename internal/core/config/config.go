// Package config handles configuration loading and validation for issuectl.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultServer         = "http://localhost:8000"
	defaultTimeoutSeconds = 30
)

// Config holds the application configuration.
type Config struct {
	// Server is the base URL of the issue-tracker API.
	Server string `yaml:"server"`
	// TimeoutSeconds bounds each API request. Defaults to 30.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// DataDir is set by the caller, not from the config file.
	DataDir string `yaml:"-"`
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns a config with all defaults applied.
func Default() *Config {
	return &Config{
		Server:         defaultServer,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// Load reads the config file at path. A missing file yields the defaults so
// first runs work without any setup.
func Load(path, dataDir string) (*Config, error) {
	cfg := Default()
	cfg.DataDir = dataDir

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server == "" {
		c.Server = defaultServer
	}
	u, err := url.Parse(c.Server)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.Server)
	}

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}
