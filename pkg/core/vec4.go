package core

import "math"

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Splat4 creates a Vec4 with every component set to s
func Splat4(s float64) Vec4 {
	return Vec4{s, s, s, s}
}

// Add returns the component-wise sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// AddScalar adds a scalar to every component
func (v Vec4) AddScalar(s float64) Vec4 {
	return Vec4{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// Subtract returns the component-wise difference of two vectors
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SubtractScalar subtracts a scalar from every component
func (v Vec4) SubtractScalar(s float64) Vec4 {
	return Vec4{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Multiply scales the vector by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// MultiplyVec returns the component-wise product of two vectors
func (v Vec4) MultiplyVec(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Divide divides every component by a scalar
func (v Vec4) Divide(scalar float64) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

// DivideVec returns the component-wise quotient of two vectors
func (v Vec4) DivideVec(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Negate returns the vector with every component negated
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product of two vectors
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the magnitude of the vector
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector; undefined for the zero vector
func (v Vec4) Normalize() Vec4 {
	return v.Multiply(1.0 / v.Length())
}

// Floor rounds every component down
func (v Vec4) Floor() Vec4 {
	return Vec4{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z), math.Floor(v.W)}
}

// Ceil rounds every component up
func (v Vec4) Ceil() Vec4 {
	return Vec4{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z), math.Ceil(v.W)}
}

// Fract returns the fractional part of every component
func (v Vec4) Fract() Vec4 {
	return Vec4{fract(v.X), fract(v.Y), fract(v.Z), fract(v.W)}
}

// XYZ drops the W component
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Lerp4 interpolates from a to b without clamping t
func Lerp4(a, b Vec4, t float64) Vec4 {
	return a.Add(b.Subtract(a).Multiply(t))
}
