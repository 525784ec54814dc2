package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// NormalIntegrator shades hits by their surface normal mapped to [0,1]³.
// It never bounces, so the depth budget is ignored.
type NormalIntegrator struct {
	TMin float64
	TMax float64
}

// NewNormalIntegrator creates a normal-shading integrator with the default interval
func NewNormalIntegrator() *NormalIntegrator {
	return &NormalIntegrator{TMin: DefaultTMin, TMax: DefaultTMax}
}

// RayColor returns (normal+1)/2 on a hit and the sky gradient otherwise
func (n *NormalIntegrator) RayColor(r core.Ray, world geometry.Shape, depth int) core.Vec3 {
	hit, isHit := world.Hit(r, n.TMin, n.TMax)
	if !isHit {
		return Background(r)
	}
	return hit.Normal.AddScalar(1).Multiply(0.5)
}
