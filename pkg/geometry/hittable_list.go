package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// HittableList is an ordered collection of shapes that is itself a Shape.
// Hit returns the nearest intersection across all members regardless of the
// order they were added in.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	l := &HittableList{}
	for _, shape := range shapes {
		l.Add(shape)
	}
	return l
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Clear removes every shape
func (l *HittableList) Clear() {
	l.shapes = nil
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *HittableList) Shapes() []Shape {
	return l.shapes
}

// Hit checks the ray against every shape, narrowing tMax to the closest hit so far
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
