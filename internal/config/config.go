// Package config provides configuration management for the warehouse
// pipeline. The normalizer itself takes no configuration, only data; these
// settings belong to the extract and load collaborators around it.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingProductsPath = errors.New("sources.products is required")
	ErrMissingReviewsPath  = errors.New("sources.reviews is required")
	ErrMissingTargetDSN    = errors.New("target.dsn is required")
	ErrInvalidTargetDriver = errors.New("target.driver must be 'sqlite'")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be 'text' or 'json'")
)

// Config is the complete pipeline configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Target  TargetConfig  `yaml:"target"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig names the two raw extracts.
type SourcesConfig struct {
	Products string `yaml:"products"`
	Reviews  string `yaml:"reviews"`
}

// TargetConfig names the warehouse database.
type TargetConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// ReportConfig controls the run report output. Path may be empty to skip
// writing a report file.
type ReportConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads and validates configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Target.Driver == "" {
		c.Target.Driver = "sqlite"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Sources.Products == "" {
		return ErrMissingProductsPath
	}

	if c.Sources.Reviews == "" {
		return ErrMissingReviewsPath
	}

	if c.Target.Driver != "sqlite" {
		return fmt.Errorf("%w: got %q", ErrInvalidTargetDriver, c.Target.Driver)
	}

	if c.Target.DSN == "" {
		return ErrMissingTargetDSN
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Products: %s, Reviews: %s, Target: %s}",
		c.Sources.Products,
		c.Sources.Reviews,
		c.Target.DSN,
	)
}
