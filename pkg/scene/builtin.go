package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundRadius = 100.0
	groundY      = -100.5
)

var groundCenter = core.NewVec3(0, groundY, -1)

type builtin struct {
	description string
	create      func() *Scene
}

// builtins are keyed by the name accepted by Create
var builtins = map[string]builtin{
	"sphere":     {"Single sphere with normal shading", NewSphereScene},
	"default":    {"Diffuse sphere resting on a ground sphere", NewDefaultScene},
	"empty":      {"No primitives, sky gradient only", NewEmptyScene},
	"spheregrid": {"10x10 grid of small diffuse spheres", NewSphereGridScene},
	"noise":      {"Row of spheres sized by value noise", NewNoiseScene},
}

// previewConfig is a single centred sample with no bounces
func previewConfig() renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = 1
	config.MaxDepth = 0
	return config
}

// NewSphereScene creates a single sphere shaded by its surface normals
func NewSphereScene() *Scene {
	s := newScene("sphere", integrator.NameNormals, previewConfig())
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	return s
}

// NewDefaultScene creates a diffuse sphere on a large ground sphere
func NewDefaultScene() *Scene {
	s := newScene("default", integrator.NameDiffuse, renderer.DefaultSamplingConfig())
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(groundCenter, groundRadius)
	return s
}

// NewEmptyScene creates a scene with no primitives. Normal shading returns
// the sky on a miss at any depth, so the depth-0 preview shows the gradient.
func NewEmptyScene() *Scene {
	return newScene("empty", integrator.NameNormals, previewConfig())
}

// groundHeight returns the ground sphere's surface height above (x, z)
func groundHeight(x, z float64) float64 {
	dz := z - groundCenter.Z
	return groundY + math.Sqrt(groundRadius*groundRadius-x*x-dz*dz)
}

// NewSphereGridScene creates a grid of small spheres resting on the ground
func NewSphereGridScene() *Scene {
	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = 50
	config.MaxDepth = 20

	s := newScene("spheregrid", integrator.NameDiffuse, config)
	s.AddSphere(groundCenter, groundRadius)

	gridSize := 10
	spacing := 0.5
	radius := spacing * 0.3

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - spacing*float64(gridSize-1)/2
			z := -1.5 - float64(j)*spacing
			s.AddSphere(core.NewVec3(x, groundHeight(x, z)+radius, z), radius)
		}
	}

	return s
}

// NewNoiseScene creates a row of spheres whose radii follow smooth value noise
func NewNoiseScene() *Scene {
	config := renderer.DefaultSamplingConfig()
	config.SamplesPerPixel = 20
	config.MaxDepth = 10

	s := newScene("noise", integrator.NameDiffuse, config)
	s.AddSphere(groundCenter, groundRadius)

	var vn noise.ValueNoise
	count := 12
	for i := 0; i < count; i++ {
		x := -2.75 + float64(i)*0.5
		z := -2.0
		radius := 0.05 + 0.2*float64(vn.Rand21(float32(i)*0.45, 0.5))
		s.AddSphere(core.NewVec3(x, groundHeight(x, z)+radius, z), radius)
	}

	return s
}
