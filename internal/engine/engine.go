// Package engine builds face-recognition models through ONNX Runtime. A
// build resolves the model's weight file in the local cache, fetches it from
// the release bucket when absent, and probes the model to confirm the runtime
// can load it.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/facewarm/internal/models"
	"github.com/MeKo-Tech/facewarm/internal/onnx"
	onnxruntime "github.com/yalue/onnxruntime_go"
)

// defaultFetchTimeout bounds a single weight download.
const defaultFetchTimeout = 10 * time.Minute

// Config holds engine construction settings.
type Config struct {
	// WeightsDir overrides the weights cache directory. Empty means the
	// default resolution order (env var, then home directory).
	WeightsDir string

	// LibraryPath overrides the ONNX Runtime shared library location.
	LibraryPath string

	// Registry is the model catalog. Nil means the built-in catalog.
	Registry *models.Registry

	// HTTPClient is used for weight downloads. Nil means a default client.
	HTTPClient *http.Client

	// Logger receives diagnostic messages. Nil means slog.Default().
	Logger *slog.Logger
}

// Engine resolves, fetches, and probes models against ONNX Runtime.
type Engine struct {
	registry   *models.Registry
	weightsDir string
	client     *http.Client
	logger     *slog.Logger
}

// Model describes a successfully built model.
type Model struct {
	Info    models.ModelInfo
	Path    string
	Size    int64
	Inputs  []onnxruntime.InputOutputInfo
	Outputs []onnxruntime.InputOutputInfo
}

// New initializes the ONNX Runtime environment and returns an engine.
// An error here means the runtime is unavailable on this host; callers
// should treat that as a skip condition, not a failure.
func New(cfg Config) (*Engine, error) {
	if err := onnx.Initialize(cfg.LibraryPath); err != nil {
		return nil, fmt.Errorf("onnx runtime unavailable: %w", err)
	}

	registry := cfg.Registry
	if registry == nil {
		registry = models.Default()
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		registry:   registry,
		weightsDir: cfg.WeightsDir,
		client:     client,
		logger:     logger,
	}, nil
}

// Close tears down the ONNX Runtime environment.
func (e *Engine) Close() error {
	return onnx.Destroy()
}

// BuildModel ensures the named model's weights are cached locally and probes
// the model with ONNX Runtime. The weight fetch is a single attempt; transient
// network failures surface as build errors and the caller decides whether the
// run continues.
func (e *Engine) BuildModel(ctx context.Context, name string) (*Model, error) {
	info, ok := e.registry.Model(name)
	if !ok {
		return nil, fmt.Errorf("unknown model %q", name)
	}

	path := models.WeightPath(e.weightsDir, info.Filename)
	if err := models.ValidateWeightExists(path); err != nil {
		if info.URL == "" {
			return nil, fmt.Errorf("model %q: no weights cached and no download URL", name)
		}
		e.logger.Info("downloading model weights", "model", name, "url", info.URL)
		if err := fetchWeights(ctx, e.client, info.URL, path); err != nil {
			return nil, fmt.Errorf("fetching %s weights: %w", name, err)
		}
	}

	inputs, outputs, err := onnxruntime.GetInputOutputInfo(path)
	if err != nil {
		return nil, fmt.Errorf("probing %s: %w", name, err)
	}

	var size int64
	if stat, err := os.Stat(path); err == nil {
		size = stat.Size()
	}

	return &Model{
		Info:    info,
		Path:    path,
		Size:    size,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// DetectorAvailable checks whether the named detector backend can be used.
// Detector weights load lazily on first use, so the check is a registry
// lookup plus runtime availability.
func (e *Engine) DetectorAvailable(name string) (models.DetectorInfo, error) {
	info, ok := e.registry.Detector(name)
	if !ok {
		return models.DetectorInfo{}, fmt.Errorf("unknown detector %q", name)
	}
	if !onnx.IsInitialized() {
		return models.DetectorInfo{}, fmt.Errorf("detector %q: onnx runtime not initialized", name)
	}
	return info, nil
}
