package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always facing against the incoming ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the outside of the surface
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with tMin < t < tMax.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
