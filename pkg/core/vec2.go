package core

import "math"

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds a scalar to every component
func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{v.X + s, v.Y + s}
}

// Subtract returns the component-wise difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// SubtractScalar subtracts a scalar from every component
func (v Vec2) SubtractScalar(s float64) Vec2 {
	return Vec2{v.X - s, v.Y - s}
}

// Multiply scales the vector by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// MultiplyVec returns the component-wise product of two vectors
func (v Vec2) MultiplyVec(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Divide divides every component by a scalar
func (v Vec2) Divide(scalar float64) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

// DivideVec returns the component-wise quotient of two vectors
func (v Vec2) DivideVec(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// Negate returns the vector with every component negated
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector; undefined for the zero vector
func (v Vec2) Normalize() Vec2 {
	inv := 1.0 / v.Length()
	return Vec2{v.X * inv, v.Y * inv}
}

// Floor rounds every component down
func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

// Ceil rounds every component up
func (v Vec2) Ceil() Vec2 {
	return Vec2{math.Ceil(v.X), math.Ceil(v.Y)}
}

// Fract returns the fractional part of every component
func (v Vec2) Fract() Vec2 {
	return Vec2{fract(v.X), fract(v.Y)}
}

// Rotate rotates counter-clockwise by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec2{cos*v.X - sin*v.Y, sin*v.X + cos*v.Y}
}

// Lerp2 interpolates from a to b without clamping t
func Lerp2(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Subtract(a).Multiply(t))
}
