package onnx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLibrary_ExplicitPath(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "libonnxruntime.so")
	require.NoError(t, os.WriteFile(lib, []byte{}, 0o644))

	path, err := FindLibrary(lib)
	require.NoError(t, err)
	assert.Equal(t, lib, path)
}

func TestFindLibrary_ExplicitPathMissing(t *testing.T) {
	_, err := FindLibrary(filepath.Join(t.TempDir(), "nope.so"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFindLibrary_EnvOverride(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "libonnxruntime.so")
	require.NoError(t, os.WriteFile(lib, []byte{}, 0o644))
	t.Setenv(EnvLibraryPath, lib)

	path, err := FindLibrary("")
	require.NoError(t, err)
	assert.Equal(t, lib, path)
}

func TestFindLibrary_EnvOverrideMissing(t *testing.T) {
	t.Setenv(EnvLibraryPath, filepath.Join(t.TempDir(), "nope.so"))

	_, err := FindLibrary("")
	require.Error(t, err)
}

func TestFindLibrary_ExplicitBeatsEnv(t *testing.T) {
	explicit := filepath.Join(t.TempDir(), "explicit.so")
	require.NoError(t, os.WriteFile(explicit, []byte{}, 0o644))
	t.Setenv(EnvLibraryPath, filepath.Join(t.TempDir(), "env.so"))

	path, err := FindLibrary(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
}
