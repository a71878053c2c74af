package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVerifyCommand_TruncatesListing(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 7; i++ {
		name := filepath.Join(dir, fmt.Sprintf("model_%02d.onnx", i))
		require.NoError(t, os.WriteFile(name, []byte("weights"), 0o644))
	}

	output, err := execute(t, "verify", "--weights-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "Found 7 weight file(s)")
	assert.Contains(t, output, "model_04.onnx")
	assert.NotContains(t, output, "model_05.onnx")
	assert.Contains(t, output, "... and 2 more")
}

func TestVerifyCommand_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	output, err := execute(t, "verify", "--weights-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "Weights directory not found")
}

func TestPreloadCommand_AlwaysExitsZero(t *testing.T) {
	dir := t.TempDir()
	// Pre-cache the weight file so no download is attempted regardless of
	// whether the inference runtime is installed on the test host.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "facenet.onnx"), []byte("cached"), 0o644))

	output, err := execute(t, "preload", "--weights-dir", dir, "--models", "facenet", "--detectors", "yunet")
	require.NoError(t, err, "preload must never fail the process")

	assert.Contains(t, output, "Running model warm-up")
	assert.Contains(t, output, "Warm-up completed")
	assert.Contains(t, output, "Found 1 weight file(s)")
}

func TestPreloadCommand_UnknownModelStillExitsZero(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "preload", "--weights-dir", dir, "--models", "not-a-model")
	require.NoError(t, err)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()

	output, err := execute(t, "list", "--weights-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "facenet")
	assert.Contains(t, output, "arcface")
	assert.Contains(t, output, "yunet")
	assert.Contains(t, output, "Detector backends:")
}

func TestListCommand_WithManifest(t *testing.T) {
	manifest := `
models:
  - name: ghostface
    filename: ghostface.onnx
    url: https://example.com/ghostface.onnx
    description: custom build
`
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	output, err := execute(t, "list", "--weights-dir", t.TempDir(), "--manifest", path)
	require.NoError(t, err)

	assert.Contains(t, output, "ghostface")
}
