package config

import (
	"fmt"
	"strings"

	"github.com/MeKo-Tech/facewarm/internal/models"
)

// Config represents the complete configuration for the facewarm tool.
// It supports loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	WeightsDir string `mapstructure:"weights_dir" yaml:"weights_dir" json:"weights_dir"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose    bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Preload configuration
	Preload PreloadConfig `mapstructure:"preload" yaml:"preload" json:"preload"`

	// Runtime configuration
	Runtime RuntimeConfig `mapstructure:"runtime" yaml:"runtime" json:"runtime"`
}

// PreloadConfig contains warm-up settings.
type PreloadConfig struct {
	// Models are the recognition model identifiers built during warm-up.
	Models []string `mapstructure:"models" yaml:"models" json:"models"`

	// Detectors are the detector backends probed during warm-up.
	Detectors []string `mapstructure:"detectors" yaml:"detectors" json:"detectors"`

	// Manifest is an optional YAML file extending the model catalog.
	Manifest string `mapstructure:"manifest" yaml:"manifest" json:"manifest"`
}

// RuntimeConfig contains ONNX Runtime settings.
type RuntimeConfig struct {
	// LibraryPath overrides the shared library location.
	LibraryPath string `mapstructure:"library_path" yaml:"library_path" json:"library_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		WeightsDir: "",
		LogLevel:   "info",
		Verbose:    false,
		Preload: PreloadConfig{
			Models:    models.DefaultModels(),
			Detectors: models.DefaultDetectors(),
		},
	}
}

// validLogLevels are the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	valid := false
	for _, level := range validLogLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level %q (must be one of: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	for _, m := range c.Preload.Models {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("preload.models contains an empty identifier")
		}
	}
	for _, d := range c.Preload.Detectors {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("preload.detectors contains an empty identifier")
		}
	}

	return nil
}
