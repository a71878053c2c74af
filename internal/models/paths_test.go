package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeightsDir_ExplicitWins(t *testing.T) {
	t.Setenv(EnvWeightsDir, "/env/weights")
	assert.Equal(t, "/explicit/weights", GetWeightsDir("/explicit/weights"))
}

func TestGetWeightsDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvWeightsDir, "/env/weights")
	assert.Equal(t, "/env/weights", GetWeightsDir(""))
}

func TestGetWeightsDir_HomeDefault(t *testing.T) {
	t.Setenv(EnvWeightsDir, "")
	_ = os.Unsetenv(EnvWeightsDir)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, DefaultHomeSubdir, WeightsSubdir)
	assert.Equal(t, expected, GetWeightsDir(""))
}

func TestWeightPath(t *testing.T) {
	got := WeightPath("/cache", "facenet.onnx")
	assert.Equal(t, filepath.Join("/cache", "facenet.onnx"), got)
}

func TestValidateWeightExists(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.onnx")
	require.Error(t, ValidateWeightExists(missing))

	present := filepath.Join(dir, "present.onnx")
	require.NoError(t, os.WriteFile(present, []byte("weights"), 0o644))
	require.NoError(t, ValidateWeightExists(present))
}
