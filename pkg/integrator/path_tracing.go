package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// DefaultReflectance is the fraction of light kept at every diffuse bounce
const DefaultReflectance = 0.5

// PathTracingIntegrator implements recursive diffuse path tracing with a
// single grey Lambertian-like surface model
type PathTracingIntegrator struct {
	Source      noise.Source // Random source for bounce directions
	Reflectance float64      // Attenuation per bounce, must be <= 1
	TMin        float64      // Lower bound of the hit interval
	TMax        float64      // Upper bound of the hit interval
	Seed        int          // Offsets bounce directions; zero keeps the unseeded pattern
}

// NewPathTracingIntegrator creates a path tracer with the default reflectance and interval
func NewPathTracingIntegrator(source noise.Source) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		Source:      source,
		Reflectance: DefaultReflectance,
		TMin:        DefaultTMin,
		TMax:        DefaultTMax,
	}
}

// RayColor returns the color for a given ray
func (pt *PathTracingIntegrator) RayColor(r core.Ray, world geometry.Shape, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(r, pt.TMin, pt.TMax)
	if !isHit {
		return Background(r)
	}

	scattered := pt.Scatter(r, hit)
	return pt.RayColor(scattered, world, depth-1).Multiply(pt.Reflectance)
}

// Scatter returns the diffuse bounce ray leaving a hit point. It aims at a
// point inside the unit sphere tangent to the surface at the hit point, i.e.
// hit.Point + hit.Normal + randomInUnitSphere. The random point is keyed on
// the hit position and the seed so a given path is reproducible.
func (pt *PathTracingIntegrator) Scatter(r core.Ray, hit *geometry.HitRecord) core.Ray {
	u1, u2, u3 := pt.Source.Rand33(float32(hit.Point.X), float32(hit.Point.Y), float32(hit.Point.Z))
	if pt.Seed != 0 {
		u1, u2, u3 = pt.Source.Rand33(u1, u2, u3+float32(pt.Seed))
	}
	offset := core.SamplePointInUnitSphere(core.NewVec3(float64(u1), float64(u2), float64(u3)))

	direction := hit.Normal.Add(offset)

	// Catch degenerate scatter direction
	if direction.LengthSquared() < 1e-16 {
		direction = hit.Normal
	}

	return core.NewRay(hit.Point, direction)
}
