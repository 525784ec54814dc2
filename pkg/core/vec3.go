package core

import "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a position in world space; it shares all Vec3 operations
type Point3 = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero returns the zero vector
func Zero() Vec3 {
	return Vec3{}
}

// Right returns the world +X axis
func Right() Vec3 {
	return Vec3{X: 1}
}

// Up returns the world +Y axis
func Up() Vec3 {
	return Vec3{Y: 1}
}

// Forward returns the world +Z axis. The camera looks down -Forward.
func Forward() Vec3 {
	return Vec3{Z: 1}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction: the result is NaN and callers must not
// pass one.
func (v Vec3) Normalize() Vec3 {
	inv := 1.0 / v.Length()
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Lerp3 interpolates from a to b. t outside [0, 1] extrapolates.
func Lerp3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Subtract(a).Multiply(t))
}

// Floor returns the component-wise floor
func (v Vec3) Floor() Vec3 {
	return Vec3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// Ceil returns the component-wise ceiling
func (v Vec3) Ceil() Vec3 {
	return Vec3{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z)}
}

// Fract returns the fractional part of each component, keeping its sign
func (v Vec3) Fract() Vec3 {
	return Vec3{fract(v.X), fract(v.Y), fract(v.Z)}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// GammaCorrect applies gamma correction to color values
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(v.X, invGamma),
		Y: math.Pow(v.Y, invGamma),
		Z: math.Pow(v.Z, invGamma),
	}
}

// RotateX rotates the vector by angle radians around the X axis
func (v Vec3) RotateX(angle float64) Vec3 {
	p := NewVec2(v.Y, v.Z).Rotate(angle)
	return Vec3{X: v.X, Y: p.X, Z: p.Y}
}

// RotateY rotates the vector by angle radians around the Y axis
func (v Vec3) RotateY(angle float64) Vec3 {
	p := NewVec2(v.Z, v.X).Rotate(angle)
	return Vec3{X: p.Y, Y: v.Y, Z: p.X}
}

// RotateZ rotates the vector by angle radians around the Z axis
func (v Vec3) RotateZ(angle float64) Vec3 {
	p := NewVec2(v.X, v.Y).Rotate(angle)
	return Vec3{X: p.X, Y: p.Y, Z: v.Z}
}

func fract(x float64) float64 {
	return x - math.Trunc(x)
}
