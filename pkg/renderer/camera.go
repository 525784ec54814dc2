package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	viewportHeight = 2.0
	focalLength    = 1.0
)

// Camera generates rays from a fixed eye at the origin looking down -Z.
//
// Image-plane coordinates (u, v) run left to right and top to bottom:
// (0, 0) is the top-left corner of the viewport and (1, 1) the bottom-right,
// which matches the row order of Image.
type Camera struct {
	AspectRatio float64
	origin      core.Point3
	corner      core.Point3 // viewport point for (u, v) = (0, 0)
	horizontal  core.Vec3
	vertical    core.Vec3 // points down so v grows with the image row
}

// NewCamera creates a camera with a viewport 2 units high, aspectRatio*2 units
// wide, one unit in front of the eye
func NewCamera(aspectRatio float64) *Camera {
	viewportWidth := aspectRatio * viewportHeight

	origin := core.Zero()
	horizontal := core.Right().Multiply(viewportWidth)
	vertical := core.Up().Multiply(-viewportHeight)
	corner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.Forward().Multiply(focalLength))

	return &Camera{
		AspectRatio: aspectRatio,
		origin:      origin,
		horizontal:  horizontal,
		vertical:    vertical,
		corner:      corner,
	}
}

// GetRay generates a ray through viewport coordinates (u, v), nominally in [0, 1]
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.corner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
