// Package config provides configuration loading and management for the
// udesign tool. Design input files are flat JSON and belong to the design
// packages; this package only configures the tool itself.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kmdouglass/udesigner/report"
)

// Config represents the complete udesign configuration
type Config struct {
	Report ReportConfig `yaml:"report"`
	Watch  WatchConfig  `yaml:"watch"`
}

// ReportConfig configures the rendered design document
type ReportConfig struct {
	// Title overrides the design type's display name (empty = use default)
	Title string `yaml:"title"`
	// MathJaxURL is the script used to typeset equations
	MathJaxURL string `yaml:"mathjax_url"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is how long to wait for more changes before re-rendering
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Title:      "",
			MathJaxURL: report.DefaultMathJaxURL,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Report.MathJaxURL == "" {
		return fmt.Errorf("report.mathjax_url is required")
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Report.Title != "" {
		c.Report.Title = other.Report.Title
	}
	if other.Report.MathJaxURL != "" {
		c.Report.MathJaxURL = other.Report.MathJaxURL
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
