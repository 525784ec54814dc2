package noise

import "github.com/chewxy/math32"

// FractSin is the classic shader one-liner fract(sin(dot(p, k)) * 43758.5453).
// Cheap but with visible patterns at large coordinates; kept for comparison
// renders.
type FractSin struct{}

func fract(x float32) float32 {
	return x - math32.Trunc(x)
}

// Rand11 returns a value in [0, 1] for x
func (FractSin) Rand11(x float32) float32 {
	return math32.Abs(fract(1000 * math32.Sin(x)))
}

// Rand21 returns a value in [0, 1] for (x, y)
func (FractSin) Rand21(x, y float32) float32 {
	return math32.Abs(fract(math32.Sin(x*12.9898+y*78.233) * 43758.544))
}

// Rand22 returns two values in [0, 1] for (x, y)
func (f FractSin) Rand22(x, y float32) (float32, float32) {
	return f.Rand21(x, y), f.Rand21(y+17.0, x-31.0)
}

// Rand33 returns three values in [0, 1] for (x, y, z)
func (f FractSin) Rand33(x, y, z float32) (float32, float32, float32) {
	return f.Rand21(x+z*0.5731, y-z*1.1437),
		f.Rand21(y+z*0.8173, x+z*0.3121),
		f.Rand21(z+x*0.2713, y+z*0.6517)
}
