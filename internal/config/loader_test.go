package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears the global viper instance so tests don't leak state into
// each other through cached bindings and defaults.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// chdirTemp moves the test into an empty directory so no stray facewarm.yaml
// is picked up from the working tree.
func chdirTemp(t *testing.T) {
	t.Helper()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
}

func TestNewLoader(t *testing.T) {
	resetViper(t)

	loader := NewLoader()
	require.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	chdirTemp(t)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"facenet"}, cfg.Preload.Models)
	assert.Equal(t, []string{"yunet"}, cfg.Preload.Detectors)
}

func TestLoad_EnvOverride(t *testing.T) {
	resetViper(t)
	chdirTemp(t)
	t.Setenv("FACEWARM_LOG_LEVEL", "warn")
	t.Setenv("FACEWARM_WEIGHTS_DIR", "/srv/weights")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/srv/weights", cfg.WeightsDir)
}

func TestLoadWithFile(t *testing.T) {
	resetViper(t)

	content := `
log_level: debug
weights_dir: /opt/face/weights
preload:
  models:
    - facenet
    - arcface
  detectors:
    - yunet
    - scrfd
runtime:
  library_path: /usr/local/lib/libonnxruntime.so
`
	path := filepath.Join(t.TempDir(), "facewarm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/opt/face/weights", cfg.WeightsDir)
	assert.Equal(t, []string{"facenet", "arcface"}, cfg.Preload.Models)
	assert.Equal(t, []string{"yunet", "scrfd"}, cfg.Preload.Detectors)
	assert.Equal(t, "/usr/local/lib/libonnxruntime.so", cfg.Runtime.LibraryPath)
}

func TestLoadWithFile_Missing(t *testing.T) {
	resetViper(t)

	_, err := NewLoader().LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadWithFile_ValidationFailure(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "facewarm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	_, err := NewLoader().LoadWithFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetConfigSearchPaths(t *testing.T) {
	paths := GetConfigSearchPaths()

	assert.Contains(t, paths, ".")
	assert.Contains(t, paths, "/etc/facewarm")
}
