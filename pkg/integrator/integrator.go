package integrator

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// Integrator computes the color carried back along a camera ray.
// depth is the remaining bounce budget.
type Integrator interface {
	RayColor(ray core.Ray, world geometry.Shape, depth int) core.Vec3
}

// Default intersection interval
const (
	DefaultTMin = 0.001
	DefaultTMax = 1000.0
)

// Integrator names accepted by New
const (
	NameDiffuse = "diffuse"
	NameNormals = "normals"
)

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// Background returns the sky gradient for a ray that hit nothing:
// white looking straight down, sky blue looking straight up
func Background(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp3(white, skyBlue, t)
}

// New returns the integrator registered under name
func New(name string, source noise.Source) (Integrator, error) {
	switch name {
	case NameDiffuse, "":
		return NewPathTracingIntegrator(source), nil
	case NameNormals:
		return NewNormalIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown shading %q (available: %s, %s)", name, NameDiffuse, NameNormals)
	}
}
