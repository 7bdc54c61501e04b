// Package config provides configuration loading and management for splitfour.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Split parameters
	Split struct {
		// Axis is the default split direction, "across" or "down"
		Axis string `yaml:"axis"`

		// Cuts are the initial fractional cut positions; values are clamped
		// into the legal range, never rejected
		Cuts []float64 `yaml:"cuts"`
	} `yaml:"split"`

	// Output parameters
	Output struct {
		// Dir is the directory where the slice files are written
		Dir string `yaml:"dir"`

		// Preview determines whether a contact-sheet preview is written
		// alongside the slices
		Preview bool `yaml:"preview"`

		// Stats determines whether per-slice statistics are reported
		Stats bool `yaml:"stats"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default split parameters: quarters along the width
	cfg.Split.Axis = "across"
	cfg.Split.Cuts = []float64{0.25, 0.50, 0.75}

	// Set default output parameters
	cfg.Output.Dir = "split_output"
	cfg.Output.Preview = false
	cfg.Output.Stats = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
