package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name matches no built-in or file
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	World          *geometry.HittableList
	SamplingConfig renderer.SamplingConfig
	Shading        string // integrator name, see integrator.New
}

// newScene creates an empty scene with a camera matching config
func newScene(name, shading string, config renderer.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(config.AspectRatio),
		World:          geometry.NewHittableList(),
		SamplingConfig: config,
		Shading:        shading,
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Point3, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// Configure applies every non-zero field of overrides to the sampling config.
// The camera is rebuilt when the aspect ratio changes.
func (s *Scene) Configure(overrides renderer.SamplingConfig) {
	aspect := s.SamplingConfig.AspectRatio
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, overrides)
	if s.Camera == nil || s.SamplingConfig.AspectRatio != aspect {
		s.Camera = renderer.NewCamera(s.SamplingConfig.AspectRatio)
	}
}

// GetPrimitiveCount returns the number of shapes in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// NewEngine validates the scene and wires it into a render engine
func (s *Scene) NewEngine(source noise.Source, logger core.Logger) (*renderer.Engine, error) {
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}

	integ, err := integrator.New(s.Shading, source)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	if pt, ok := integ.(*integrator.PathTracingIntegrator); ok {
		pt.Seed = s.SamplingConfig.Seed
	}

	camera := s.Camera
	if camera == nil {
		camera = renderer.NewCamera(s.SamplingConfig.AspectRatio)
	}

	return renderer.NewEngine(camera, s.World, integ, source, s.SamplingConfig, logger), nil
}
