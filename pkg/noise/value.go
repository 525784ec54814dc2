package noise

import "github.com/chewxy/math32"

// ValueNoise interpolates Xorshift values at integer lattice points with a
// cubic hermite fade, giving smooth noise in [0, 1]
type ValueNoise struct{}

func hermite3(f float32) float32 {
	return f * f * (3 - 2*f)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Rand21 returns smooth noise for (x, y)
func (ValueNoise) Rand21(x, y float32) float32 {
	var h Xorshift
	nx, ny := math32.Floor(x), math32.Floor(y)

	v00 := h.Rand21(nx, ny)
	v10 := h.Rand21(nx+1, ny)
	v01 := h.Rand21(nx, ny+1)
	v11 := h.Rand21(nx+1, ny+1)

	fx := hermite3(x - nx)
	fy := hermite3(y - ny)
	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

// Rand31 returns smooth noise for (x, y, z)
func (ValueNoise) Rand31(x, y, z float32) float32 {
	var h Xorshift
	nx, ny, nz := math32.Floor(x), math32.Floor(y), math32.Floor(z)
	fx := hermite3(x - nx)
	fy := hermite3(y - ny)
	fz := hermite3(z - nz)

	layer := func(z float32) float32 {
		v00 := h.Rand31(nx, ny, z)
		v10 := h.Rand31(nx+1, ny, z)
		v01 := h.Rand31(nx, ny+1, z)
		v11 := h.Rand31(nx+1, ny+1, z)
		return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
	}

	return lerp(layer(nz), layer(nz+1), fz)
}
