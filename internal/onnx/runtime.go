// Package onnx manages the ONNX Runtime environment shared by all model
// probing. The runtime lives in a native shared library that may be absent
// from the host; callers must treat initialization failure as "runtime
// unavailable", not as a fatal error.
package onnx

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	onnxruntime "github.com/yalue/onnxruntime_go"
)

// Environment variable for the shared library path override.
const EnvLibraryPath = "FACEWARM_ONNX_LIB"

const (
	libLinux   = "libonnxruntime.so"
	libDarwin  = "libonnxruntime.dylib"
	libWindows = "onnxruntime.dll"
)

// libraryName returns the ONNX Runtime library filename for the current OS.
func libraryName() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return libLinux, nil
	case "darwin":
		return libDarwin, nil
	case "windows":
		return libWindows, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// FindLibrary resolves the ONNX Runtime shared library path
// Priority: 1. Explicit path parameter, 2. Environment variable, 3. Well-known system locations.
// An empty return with nil error means no candidate was found and the
// runtime's own default lookup should be used.
func FindLibrary(libraryPath string) (string, error) {
	if libraryPath != "" {
		if _, err := os.Stat(libraryPath); err != nil {
			return "", fmt.Errorf("onnx runtime library not found: %s", libraryPath)
		}
		return libraryPath, nil
	}

	if envPath := os.Getenv(EnvLibraryPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("onnx runtime library not found: %s", envPath)
		}
		return envPath, nil
	}

	libName, err := libraryName()
	if err != nil {
		return "", err
	}

	for _, dir := range searchDirs() {
		candidate := filepath.Join(dir, libName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", nil
}

// searchDirs returns the directories probed for the shared library, in order.
func searchDirs() []string {
	dirs := []string{}

	// A local onnxruntime/lib next to the executable takes precedence,
	// which is how container images ship the runtime.
	if execPath, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(execPath), "onnxruntime", "lib"))
	}
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(cwd, "onnxruntime", "lib"))
	}

	dirs = append(dirs, "/usr/local/lib", "/usr/lib")
	return dirs
}

// Initialize locates the shared library and initializes the ONNX Runtime
// environment. It is a no-op if the environment is already initialized.
// Failure means the runtime is unavailable on this host.
func Initialize(libraryPath string) error {
	if onnxruntime.IsInitialized() {
		return nil
	}

	path, err := FindLibrary(libraryPath)
	if err != nil {
		return err
	}
	if path != "" {
		onnxruntime.SetSharedLibraryPath(path)
	}

	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initializing onnx runtime: %w", err)
	}
	return nil
}

// Destroy tears down the ONNX Runtime environment.
func Destroy() error {
	if !onnxruntime.IsInitialized() {
		return nil
	}
	if err := onnxruntime.DestroyEnvironment(); err != nil {
		return fmt.Errorf("destroying onnx runtime environment: %w", err)
	}
	return nil
}

// IsInitialized reports whether the runtime environment is ready.
func IsInitialized() bool {
	return onnxruntime.IsInitialized()
}
