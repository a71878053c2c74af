// Package preload implements the warm-up sequence run at build time: build
// every configured recognition model so its weights land in the local cache,
// then probe the configured detector backends. Failures never abort the
// sequence; the point of the warm-up is to do as much as possible, not to
// gate the build.
package preload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/MeKo-Tech/facewarm/internal/engine"
	"github.com/MeKo-Tech/facewarm/internal/models"
)

// Builder is the part of the face engine the preloader depends on.
type Builder interface {
	BuildModel(ctx context.Context, name string) (*engine.Model, error)
	DetectorAvailable(name string) (models.DetectorInfo, error)
}

// Config holds preloader settings.
type Config struct {
	// Out receives human-readable progress lines. Nil means os.Stdout.
	Out io.Writer

	// Logger receives structured diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// ModelResult records the outcome of one model build attempt.
type ModelResult struct {
	Name     string
	Size     int64
	Duration time.Duration
	Err      error
}

// DetectorResult records the outcome of one detector probe.
type DetectorResult struct {
	Name string
	// Deferred is set when the probe failed; the detector will load on
	// first use instead.
	Deferred bool
}

// Result summarizes a warm-up run.
type Result struct {
	// RuntimeAvailable is false when the inference runtime could not be
	// initialized and the whole preload step was skipped.
	RuntimeAvailable bool

	Models    []ModelResult
	Detectors []DetectorResult
}

// Succeeded reports whether the preload step ran at all. Individual model
// failures do not count against it.
func (r Result) Succeeded() bool {
	return r.RuntimeAvailable
}

// FailedModels returns the names of models that failed to build.
func (r Result) FailedModels() []string {
	var out []string
	for _, m := range r.Models {
		if m.Err != nil {
			out = append(out, m.Name)
		}
	}
	return out
}

// Preloader runs the warm-up sequence against a face engine.
type Preloader struct {
	builder Builder
	out     io.Writer
	logger  *slog.Logger
}

// New creates a Preloader. A nil builder is allowed and means the runtime is
// unavailable; Run then reports the step as skipped.
func New(builder Builder, cfg Config) *Preloader {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Preloader{builder: builder, out: out, logger: logger}
}

// Run builds the given models in order and probes the given detectors.
// Per-model and per-detector failures are recorded and logged but never stop
// the iteration.
func (p *Preloader) Run(ctx context.Context, modelNames, detectorNames []string) Result {
	if p.builder == nil {
		fmt.Fprintln(p.out, "❌ Inference runtime not available. Skipping model pre-loading.")
		return Result{RuntimeAvailable: false}
	}

	result := Result{RuntimeAvailable: true}

	fmt.Fprintf(p.out, "Pre-loading %d recognition model(s)...\n", len(modelNames))
	for _, name := range modelNames {
		fmt.Fprintf(p.out, "→ Loading %s...\n", name)
		start := time.Now()
		model, err := p.builder.BuildModel(ctx, name)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(p.out, "❌ Failed to load %s: %v\n", name, err)
			p.logger.Warn("model preload failed", "model", name, "error", err)
			result.Models = append(result.Models, ModelResult{Name: name, Duration: elapsed, Err: err})
			continue
		}
		fmt.Fprintf(p.out, "✅ %s loaded successfully (%.1f MB in %v)\n",
			name, float64(model.Size)/(1024*1024), elapsed.Round(time.Millisecond))
		result.Models = append(result.Models, ModelResult{Name: name, Size: model.Size, Duration: elapsed})
	}

	fmt.Fprintf(p.out, "\nPre-loading %d detector(s)...\n", len(detectorNames))
	for _, name := range detectorNames {
		if _, err := p.builder.DetectorAvailable(name); err != nil {
			fmt.Fprintf(p.out, "⚠️  Note: %s detector will load on first use\n", name)
			p.logger.Debug("detector probe deferred", "detector", name, "error", err)
			result.Detectors = append(result.Detectors, DetectorResult{Name: name, Deferred: true})
			continue
		}
		fmt.Fprintf(p.out, "✅ %s detector available\n", name)
		result.Detectors = append(result.Detectors, DetectorResult{Name: name})
	}

	return result
}
