package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MockShape implements Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected empty list to miss")
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5))
	list.Add(NewSphere(core.NewVec3(0, -100.5, -1), 100))

	if list.Len() != 2 {
		t.Fatalf("Expected 2 shapes, got %d", list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d shapes", list.Len())
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected cleared list to miss")
	}
}

func TestHittableList_NearestHitWins(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5)

	for _, list := range []*HittableList{NewHittableList(near, far), NewHittableList(far, near)} {
		hit, isHit := list.Hit(ray, 0.001, 1000.0)
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
		}
	}
}

func TestHittableList_TightensUpperBound(t *testing.T) {
	var seenMax []float64
	record := func(tValue float64) Shape {
		return MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
			seenMax = append(seenMax, tMax)
			if tValue > tMin && tValue < tMax {
				return &HitRecord{T: tValue}, true
			}
			return nil, false
		}}
	}

	list := NewHittableList(record(5), record(3), record(4))
	hit, isHit := list.Hit(core.NewRay(core.Zero(), core.Forward()), 0, 100)
	if !isHit || hit.T != 3 {
		t.Fatalf("Expected hit at t=3, got %v (hit=%t)", hit, isHit)
	}

	expected := []float64{100, 5, 3}
	for i, v := range expected {
		if seenMax[i] != v {
			t.Errorf("Shape %d saw tMax=%f, expected %f", i, seenMax[i], v)
		}
	}
}

func TestHittableList_PermutationInvariant(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	spheres := make([]Shape, 8)
	for i := range spheres {
		center := core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, -2-random.Float64()*6)
		spheres[i] = NewSphere(center, 0.2+random.Float64()*0.8)
	}

	for i := 0; i < 200; i++ {
		direction := core.NewVec3(random.Float64()*1.2-0.6, random.Float64()*1.2-0.6, -1)
		ray := core.NewRay(core.Zero(), direction)

		// Reference: minimum t over each primitive tested independently
		var best *HitRecord
		for _, s := range spheres {
			if hit, ok := s.Hit(ray, 0.001, 1000.0); ok && (best == nil || hit.T < best.T) {
				best = hit
			}
		}

		perm := random.Perm(len(spheres))
		list := NewHittableList()
		for _, idx := range perm {
			list.Add(spheres[idx])
		}

		hit, isHit := list.Hit(ray, 0.001, 1000.0)
		if (best != nil) != isHit {
			t.Fatalf("Ray %d: list hit=%t, independent minimum hit=%t", i, isHit, best != nil)
		}
		if best != nil && *hit != *best {
			t.Fatalf("Ray %d: list returned %+v, expected %+v", i, *hit, *best)
		}
	}
}
