package geometry

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector{3, 4}
	b := Vector{1, -2}

	if got := a.Add(b); !got.Equal(Vector{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); !got.Equal(Vector{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(2); !got.Equal(Vector{6, 8}) {
		t.Errorf("Scale = %v, want {6 8}", got)
	}
	if got := a.Dot(b); got != 3-8 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -6-4 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	n := Vector{3, 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}

	// Zero vector normalizes to zero by convention.
	if got := (Vector{}).Normalize(); !got.Equal(Vector{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 4, 4}, true},
		{"shared edge", Rect{10, 0, 10, 10}, true},
		{"shared corner", Rect{10, 10, 5, 5}, true},
		{"disjoint", Rect{11, 0, 5, 5}, false},
		{"disjoint vertical", Rect{0, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if got := r.Center(); !got.Equal(Vector{25, 40}) {
		t.Errorf("Center = %v, want {25 40}", got)
	}
}
