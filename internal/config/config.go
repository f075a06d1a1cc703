// Package config provides process-wide options for strata: debug rendering
// limits and the default date layout used by conversions. Options load from
// YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the engine options.
type Config struct {
	// MaxDisplayRows caps the number of rows rendered by debug printing.
	MaxDisplayRows int `json:"max_display_rows" yaml:"max_display_rows"`
	// DateLayout is the Go reference layout used when a conversion does not
	// supply its own.
	DateLayout string `json:"date_layout" yaml:"date_layout"`
}

// Default configuration values.
const (
	DefaultMaxDisplayRows = 10
	DefaultDateLayout     = "2006-01-02 15:04:05"
)

var (
	global Config
	mu     sync.RWMutex
)

func init() {
	global = NewConfig()
}

// NewConfig returns a configuration with default values.
func NewConfig() Config {
	return Config{
		MaxDisplayRows: DefaultMaxDisplayRows,
		DateLayout:     DefaultDateLayout,
	}
}

// Validate returns an error when an option is out of range.
func (c *Config) Validate() error {
	if c.MaxDisplayRows < 0 {
		return fmt.Errorf("MaxDisplayRows must be non-negative, got %d", c.MaxDisplayRows)
	}
	if c.DateLayout == "" {
		return fmt.Errorf("DateLayout must not be empty")
	}
	return nil
}

// GetConfig returns a copy of the global configuration.
func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetConfig replaces the global configuration after validation.
func SetConfig(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	global = c
	return nil
}

// Reset restores the global configuration to its defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = NewConfig()
}

// LoadFromFile reads a YAML configuration file, applies environment
// overrides, and installs the result globally.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	c := NewConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	applyEnvOverrides(&c)
	if err := SetConfig(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Environment variable names recognized by applyEnvOverrides.
const (
	EnvMaxDisplayRows = "STRATA_MAX_DISPLAY_ROWS"
	EnvDateLayout     = "STRATA_DATE_LAYOUT"
)

func applyEnvOverrides(c *Config) {
	if v := os.Getenv(EnvMaxDisplayRows); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDisplayRows = n
		}
	}
	if v := os.Getenv(EnvDateLayout); v != "" {
		c.DateLayout = v
	}
}
