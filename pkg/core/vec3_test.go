package core

import (
	"math"
	"testing"
)

func TestVec3_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		rotate   func(Vec3) Vec3
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			rotate:   func(v Vec3) Vec3 { return v.RotateZ(0) },
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			rotate:   func(v Vec3) Vec3 { return v.RotateZ(math.Pi / 2) },
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotate:   func(v Vec3) Vec3 { return v.RotateY(math.Pi / 2) },
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			rotate:   func(v Vec3) Vec3 { return v.RotateX(math.Pi / 2) },
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			rotate:   func(v Vec3) Vec3 { return v.RotateY(math.Pi) },
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.rotate(tt.vector)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(-1, -1, -1),
		NewVec3(1e-3, 2e-3, -5e-4),
		NewVec3(1e6, -2e6, 3e6),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Length()-1.0) > 1e-12 {
			t.Errorf("Normalize(%v) has length %f, expected 1", v, n.Length())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("Normalize(%v) = %v changed direction", v, n)
		}
	}
}

func TestVec3_NormalizeZeroIsUndefined(t *testing.T) {
	n := Zero().Normalize()
	if !math.IsNaN(n.X) {
		t.Errorf("Expected NaN components for zero vector, got %v", n)
	}
}

func TestVec3_Cross(t *testing.T) {
	// Right-handed: X × Y = Z
	if got := Right().Cross(Up()); got != Forward() {
		t.Errorf("Expected X × Y = Z, got %v", got)
	}
	if got := Up().Cross(Right()); got != Forward().Negate() {
		t.Errorf("Expected Y × X = -Z, got %v", got)
	}

	a := NewVec3(1, 2, 3)
	b := NewVec3(-4, 0.5, 2)
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("Cross product %v is not perpendicular to its inputs", c)
	}
}

func TestLerp3(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint", 0.5, NewVec3(0.75, 0.85, 1.0)},
		{"extrapolate past end", 2, NewVec3(0, 0.4, 1.0)},
		{"extrapolate before start", -1, NewVec3(1.5, 1.3, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp3(a, b, tt.t)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Lerp3(%v, %v, %f) = %v, expected %v", a, b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestVec3_FloorCeilFract(t *testing.T) {
	v := NewVec3(1.25, -1.25, 3)

	if got := v.Floor(); got != NewVec3(1, -2, 3) {
		t.Errorf("Floor: got %v", got)
	}
	if got := v.Ceil(); got != NewVec3(2, -1, 3) {
		t.Errorf("Ceil: got %v", got)
	}
	if got := v.Fract(); got != NewVec3(0.25, -0.25, 0) {
		t.Errorf("Fract: got %v", got)
	}
}

func TestVec3_ComponentWise(t *testing.T) {
	a := NewVec3(2, 4, 8)
	b := NewVec3(1, 2, 4)

	if got := a.MultiplyVec(b); got != NewVec3(2, 8, 32) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.DivideVec(b); got != NewVec3(2, 2, 2) {
		t.Errorf("DivideVec: got %v", got)
	}
	if got := a.Divide(2); got != NewVec3(1, 2, 4) {
		t.Errorf("Divide: got %v", got)
	}
	if got := a.AddScalar(1); got != NewVec3(3, 5, 9) {
		t.Errorf("AddScalar: got %v", got)
	}
	if got := a.SubtractScalar(1); got != NewVec3(1, 3, 7) {
		t.Errorf("SubtractScalar: got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-2, -4, -8) {
		t.Errorf("Negate: got %v", got)
	}
}

func TestVec3_Deterministic(t *testing.T) {
	a := NewVec3(0.1, 0.2, 0.3)
	b := NewVec3(-0.7, 0.11, 5.5)

	first := Lerp3(a.Cross(b), b.Normalize(), 0.37).Multiply(a.Dot(b))
	for i := 0; i < 10; i++ {
		again := Lerp3(a.Cross(b), b.Normalize(), 0.37).Multiply(a.Dot(b))
		if math.Float64bits(first.X) != math.Float64bits(again.X) ||
			math.Float64bits(first.Y) != math.Float64bits(again.Y) ||
			math.Float64bits(first.Z) != math.Float64bits(again.Z) {
			t.Fatalf("Expected bit-identical results, got %v and %v", first, again)
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); got != ray.Origin {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
	if got := ray.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("At(1.5) = %v, expected (1, 2, 0)", got)
	}
	if got := ray.At(-1); got != NewVec3(1, 2, 5) {
		t.Errorf("At(-1) = %v, expected (1, 2, 5)", got)
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	samples := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 1, 1),
		NewVec3(0.5, 0.25, 0.75),
		NewVec3(0.999, 0.001, 0.5),
	}

	for _, s := range samples {
		p := SamplePointInUnitSphere(s)
		if p.Length() > 1.0+1e-12 {
			t.Errorf("SamplePointInUnitSphere(%v) = %v lies outside the unit sphere", s, p)
		}
	}
}
