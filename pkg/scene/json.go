package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// SphereConfig is one sphere in a scene file
type SphereConfig struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// FileConfig is the on-disk JSON scene format. Omitted sampling fields
// fall back to renderer.DefaultSamplingConfig.
type FileConfig struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Width           int            `json:"width"`
	AspectRatio     float64        `json:"aspectRatio"`
	SamplesPerPixel int            `json:"samplesPerPixel"`
	MaxDepth        *int           `json:"maxDepth"`
	Seed            int            `json:"seed"`
	Gamma           float64        `json:"gamma"`
	Shading         string         `json:"shading"`
	Spheres         []SphereConfig `json:"spheres"`
}

// ParseJSON decodes and validates a scene file's contents. Unknown fields are
// rejected so typos surface as errors.
func ParseJSON(data []byte, fallbackName string) (*Scene, error) {
	var fc FileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	return fc.Build(fallbackName)
}

// Build converts a decoded file into a Scene
func (fc FileConfig) Build(fallbackName string) (*Scene, error) {
	name := fc.Name
	if name == "" {
		name = fallbackName
	}

	shading := fc.Shading
	if shading == "" {
		shading = integrator.NameDiffuse
	}
	if shading != integrator.NameDiffuse && shading != integrator.NameNormals {
		return nil, fmt.Errorf("scene %s: unknown shading %q", name, shading)
	}

	config := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		Width:           fc.Width,
		AspectRatio:     fc.AspectRatio,
		SamplesPerPixel: fc.SamplesPerPixel,
		Seed:            fc.Seed,
		Gamma:           fc.Gamma,
	})
	// Depth 0 is meaningful, so it is only defaulted when absent
	if fc.MaxDepth != nil {
		config.MaxDepth = *fc.MaxDepth
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	s := newScene(name, shading, config)
	for i, sc := range fc.Spheres {
		if !(sc.Radius > 0) {
			return nil, fmt.Errorf("scene %s: sphere %d: radius must be positive, got %v", name, i, sc.Radius)
		}
		s.AddSphere(core.NewVec3(sc.Center[0], sc.Center[1], sc.Center[2]), sc.Radius)
	}

	return s, nil
}

// LoadJSON reads a scene file from disk
func LoadJSON(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	base := filepath.Base(path)
	return ParseJSON(data, strings.TrimSuffix(base, filepath.Ext(base)))
}
