package models

import (
	"fmt"
	"os"
	"path/filepath"
)

// Weights cache location under the user's home directory.
const (
	DefaultHomeSubdir = ".facewarm"
	WeightsSubdir     = "weights"
)

// Environment variable for weights directory override.
const EnvWeightsDir = "FACEWARM_WEIGHTS_DIR"

// GetWeightsDir returns the weights cache directory from various sources
// Priority: 1. Explicit weightsDir parameter, 2. Environment variable, 3. Home directory default.
func GetWeightsDir(weightsDir string) string {
	if weightsDir != "" {
		return weightsDir
	}

	if envDir := os.Getenv(EnvWeightsDir); envDir != "" {
		return envDir
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, DefaultHomeSubdir, WeightsSubdir)
	}

	// Fallback to relative path if the home directory can't be resolved
	return WeightsSubdir
}

// WeightPath resolves a weight filename to its full path inside the cache.
func WeightPath(weightsDir, filename string) string {
	return filepath.Join(GetWeightsDir(weightsDir), filename)
}

// ValidateWeightExists checks if a weight file exists at the given path.
func ValidateWeightExists(weightPath string) error {
	if _, err := os.Stat(weightPath); os.IsNotExist(err) {
		return fmt.Errorf("weight file not found: %s", weightPath)
	}
	return nil
}
