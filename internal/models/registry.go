package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Model name constants to avoid typos and ensure consistency.
const (
	Facenet    = "facenet"
	Facenet512 = "facenet512"
	ArcFace    = "arcface"
	SFace      = "sface"
	OpenFace   = "openface"
)

// Detector backend names.
const (
	DetectorYuNet      = "yunet"
	DetectorSCRFD      = "scrfd"
	DetectorRetinaFace = "retinaface"
	DetectorUltraFace  = "ultraface"
)

// baseURL is the release bucket weights are fetched from when not cached.
const baseURL = "https://github.com/MeKo-Tech/facewarm-models/releases/download/v2025.1"

// ModelInfo contains metadata about a recognition model.
type ModelInfo struct {
	Name        string `yaml:"name"`
	Filename    string `yaml:"filename"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	// Embedding is the output vector dimension.
	Embedding int `yaml:"embedding,omitempty"`
}

// DetectorInfo contains metadata about a face detector backend.
// Detectors load lazily on first use; the registry entry only supports
// availability probing and listing.
type DetectorInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Registry is the catalog of known models and detector backends.
type Registry struct {
	models        map[string]ModelInfo
	modelOrder    []string
	detectors     map[string]DetectorInfo
	detectorOrder []string
}

// Default returns the built-in catalog.
func Default() *Registry {
	r := &Registry{
		models:    make(map[string]ModelInfo),
		detectors: make(map[string]DetectorInfo),
	}

	for _, m := range []ModelInfo{
		{
			Name:        Facenet,
			Filename:    "facenet.onnx",
			URL:         baseURL + "/facenet.onnx",
			Description: "FaceNet recognition model (128-d embeddings)",
			Embedding:   128,
		},
		{
			Name:        Facenet512,
			Filename:    "facenet512.onnx",
			URL:         baseURL + "/facenet512.onnx",
			Description: "FaceNet recognition model (512-d embeddings)",
			Embedding:   512,
		},
		{
			Name:        ArcFace,
			Filename:    "arcface_r100.onnx",
			URL:         baseURL + "/arcface_r100.onnx",
			Description: "ArcFace ResNet-100 recognition model",
			Embedding:   512,
		},
		{
			Name:        SFace,
			Filename:    "sface.onnx",
			URL:         baseURL + "/sface.onnx",
			Description: "SFace lightweight recognition model",
			Embedding:   128,
		},
		{
			Name:        OpenFace,
			Filename:    "openface.onnx",
			URL:         baseURL + "/openface.onnx",
			Description: "OpenFace recognition model",
			Embedding:   128,
		},
	} {
		r.addModel(m)
	}

	for _, d := range []DetectorInfo{
		{Name: DetectorYuNet, Description: "YuNet face detector (fastest)"},
		{Name: DetectorSCRFD, Description: "SCRFD face detector"},
		{Name: DetectorRetinaFace, Description: "RetinaFace face detector"},
		{Name: DetectorUltraFace, Description: "UltraFace lightweight face detector"},
	} {
		r.addDetector(d)
	}

	return r
}

// DefaultModels returns the model identifiers preloaded when none are configured.
func DefaultModels() []string {
	return []string{Facenet}
}

// DefaultDetectors returns the detector identifiers probed when none are configured.
func DefaultDetectors() []string {
	return []string{DetectorYuNet}
}

func (r *Registry) addModel(m ModelInfo) {
	if _, exists := r.models[m.Name]; !exists {
		r.modelOrder = append(r.modelOrder, m.Name)
	}
	r.models[m.Name] = m
}

func (r *Registry) addDetector(d DetectorInfo) {
	if _, exists := r.detectors[d.Name]; !exists {
		r.detectorOrder = append(r.detectorOrder, d.Name)
	}
	r.detectors[d.Name] = d
}

// Model looks up a recognition model by identifier.
func (r *Registry) Model(name string) (ModelInfo, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Detector looks up a detector backend by identifier.
func (r *Registry) Detector(name string) (DetectorInfo, bool) {
	d, ok := r.detectors[name]
	return d, ok
}

// Models returns all known models in registration order.
func (r *Registry) Models() []ModelInfo {
	out := make([]ModelInfo, 0, len(r.modelOrder))
	for _, name := range r.modelOrder {
		out = append(out, r.models[name])
	}
	return out
}

// Detectors returns all known detector backends in registration order.
func (r *Registry) Detectors() []DetectorInfo {
	out := make([]DetectorInfo, 0, len(r.detectorOrder))
	for _, name := range r.detectorOrder {
		out = append(out, r.detectors[name])
	}
	return out
}

// manifest is the YAML shape of a deployment model manifest.
type manifest struct {
	Models    []ModelInfo    `yaml:"models"`
	Detectors []DetectorInfo `yaml:"detectors"`
}

// LoadManifest merges entries from a YAML manifest file into the registry.
// Entries with a known name override the built-in catalog; new names are appended.
// Deployments use this to pin custom model builds without a code change.
func (r *Registry) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	var mf manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	for _, m := range mf.Models {
		if m.Name == "" {
			return fmt.Errorf("manifest %s: model entry missing name", path)
		}
		if m.Filename == "" {
			return fmt.Errorf("manifest %s: model %q missing filename", path, m.Name)
		}
		r.addModel(m)
	}

	for _, d := range mf.Detectors {
		if d.Name == "" {
			return fmt.Errorf("manifest %s: detector entry missing name", path)
		}
		r.addDetector(d)
	}

	return nil
}
