package geometry

import (
	"math"
	"testing"
)

func TestIntersectRayFromRect(t *testing.T) {
	shape := RectShape(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	tests := []struct {
		name   string
		target Vector
		want   Vector
	}{
		{"due east", Vector{250, 50}, Vector{100, 50}},
		{"due west", Vector{-100, 50}, Vector{0, 50}},
		{"due south", Vector{50, 300}, Vector{50, 100}},
		{"due north", Vector{50, -10}, Vector{50, 0}},
		{"diagonal exits corner", Vector{200, 200}, Vector{100, 100}},
		{"shallow angle exits side", Vector{250, 100}, Vector{100, 62.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectRayFromShape(shape, tt.target)
			if !ok {
				t.Fatalf("no intersection for target %v", tt.target)
			}
			if !got.Equal(tt.want) {
				t.Errorf("intersection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectRayTargetInside(t *testing.T) {
	shape := RectShape(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	if _, ok := IntersectRayFromShape(shape, Vector{50, 50}); ok {
		t.Error("target strictly inside the rect should not intersect")
	}

	// Boundary points are not strictly inside.
	if _, ok := IntersectRayFromShape(shape, Vector{100, 50}); !ok {
		t.Error("target on the boundary should intersect")
	}
}

func TestIntersectRayZeroSizeShape(t *testing.T) {
	// A zero-size shape never contains the target; the ray collapses to
	// the shape center.
	shape := RectShape(Rect{X: 30, Y: 40, Width: 0, Height: 0})
	got, ok := IntersectRayFromShape(shape, Vector{30, 40})
	if !ok {
		t.Fatal("zero-size shape should always intersect")
	}
	if !got.Equal(Vector{30, 40}) {
		t.Errorf("intersection = %v, want shape center {30 40}", got)
	}
}

func TestIntersectRayFromEllipse(t *testing.T) {
	shape := EllipseShape(Rect{X: 0, Y: 0, Width: 200, Height: 100})

	got, ok := IntersectRayFromShape(shape, Vector{400, 50})
	if !ok {
		t.Fatal("no intersection toward the east")
	}
	if !got.Equal(Vector{200, 50}) {
		t.Errorf("east intersection = %v, want {200 50}", got)
	}

	got, ok = IntersectRayFromShape(shape, Vector{100, 500})
	if !ok {
		t.Fatal("no intersection toward the south")
	}
	if !got.Equal(Vector{100, 100}) {
		t.Errorf("south intersection = %v, want {100 100}", got)
	}

	// Diagonal direction lands on the ellipse equation.
	got, ok = IntersectRayFromShape(shape, Vector{300, 150})
	if !ok {
		t.Fatal("no diagonal intersection")
	}
	dx := (got.X - 100) / 100
	dy := (got.Y - 50) / 50
	if r := dx*dx + dy*dy; math.Abs(r-1) > 1e-12 {
		t.Errorf("diagonal intersection %v is not on the ellipse (r^2 = %v)", got, r)
	}

	if _, ok := IntersectRayFromShape(shape, Vector{110, 55}); ok {
		t.Error("target inside the ellipse should not intersect")
	}
}
