package geometry

import (
	"slices"
	"testing"
)

func TestComputePolylineClipsEndpoints(t *testing.T) {
	source := RectShape(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	target := RectShape(Rect{X: 200, Y: 0, Width: 100, Height: 100})

	got := ComputePolyline(source, target, nil)
	want := []Vector{{100, 50}, {200, 50}}
	if !slices.Equal(got, want) {
		t.Errorf("ComputePolyline = %v, want %v", got, want)
	}
}

func TestComputePolylineWithVertices(t *testing.T) {
	source := RectShape(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	target := RectShape(Rect{X: 200, Y: 200, Width: 100, Height: 100})
	vertices := []Vector{{50, 300}}

	got := ComputePolyline(source, target, vertices)
	if len(got) != 3 {
		t.Fatalf("polyline has %d points, want 3", len(got))
	}
	if got[1] != vertices[0] {
		t.Errorf("middle point = %v, want %v", got[1], vertices[0])
	}
	// The first segment aims at the vertex, not the target center, so it
	// leaves through the bottom edge of the source.
	if got[0].Y != 100 {
		t.Errorf("start point = %v, want exit through bottom edge", got[0])
	}
	// The last segment approaches from the vertex side.
	if got[2].X != 200 {
		t.Errorf("end point = %v, want entry through left edge", got[2])
	}
}

func TestComputePolylineOverlappingShapesFallsBackToCenters(t *testing.T) {
	// Both centers are inside the other shape, so no boundary intersection
	// exists and both endpoints fall back to the shape centers.
	source := RectShape(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	target := RectShape(Rect{X: 10, Y: 10, Width: 100, Height: 100})

	got := ComputePolyline(source, target, nil)
	want := []Vector{{50, 50}, {60, 60}}
	if !slices.Equal(got, want) {
		t.Errorf("ComputePolyline = %v, want center fallback %v", got, want)
	}
}

func TestPolylineLength(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}, {10, 5}}
	if got := PolylineLength(polyline); got != 15 {
		t.Errorf("PolylineLength = %v, want 15", got)
	}
	if got := PolylineLength(nil); got != 0 {
		t.Errorf("PolylineLength(nil) = %v, want 0", got)
	}
	if got := PolylineLength([]Vector{{3, 3}}); got != 0 {
		t.Errorf("PolylineLength(single point) = %v, want 0", got)
	}
}

func TestPointAlongPolyline(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}}

	tests := []struct {
		name   string
		offset float64
		want   Vector
	}{
		{"negative offset clamps to start", -5, Vector{0, 0}},
		{"zero offset", 0, Vector{0, 0}},
		{"interior offset", 5, Vector{5, 0}},
		{"offset at total length", 10, Vector{10, 0}},
		{"offset past the end clamps", 100, Vector{10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointAlongPolyline(polyline, tt.offset)
			if !ok {
				t.Fatal("PointAlongPolyline reported no result")
			}
			if !got.Equal(tt.want) {
				t.Errorf("PointAlongPolyline(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestPointAlongPolylineCrossesSegments(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}, {10, 10}}
	got, ok := PointAlongPolyline(polyline, 15)
	if !ok {
		t.Fatal("PointAlongPolyline reported no result")
	}
	if !got.Equal(Vector{10, 5}) {
		t.Errorf("PointAlongPolyline(15) = %v, want {10 5}", got)
	}
}

func TestPointAlongPolylineDegenerate(t *testing.T) {
	if _, ok := PointAlongPolyline(nil, 5); ok {
		t.Error("empty polyline should report no result")
	}
	got, ok := PointAlongPolyline([]Vector{{7, 7}}, 5)
	if !ok || !got.Equal(Vector{7, 7}) {
		t.Errorf("single-point polyline = %v, %v; want {7 7}, true", got, ok)
	}
}

func TestNearestSegmentIndex(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}, {20, 0}}

	// The query point projects onto both segments at equal perpendicular
	// distance; ties break toward the lower index.
	if got := NearestSegmentIndex(polyline, Vector{10, 5}); got != 0 {
		t.Errorf("tie-break index = %d, want 0", got)
	}

	if got := NearestSegmentIndex(polyline, Vector{15, 1}); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if got := NearestSegmentIndex(polyline, Vector{2, -3}); got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}

func TestNearestSegmentIndexOutOfRangeProjections(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}}

	// The projection falls before the segment start, so no candidate exists.
	if got := NearestSegmentIndex(polyline, Vector{-5, 3}); got != -1 {
		t.Errorf("index = %d, want -1 for out-of-range projection", got)
	}
	if got := NearestSegmentIndex([]Vector{{1, 1}}, Vector{0, 0}); got != -1 {
		t.Errorf("index = %d, want -1 for degenerate polyline", got)
	}
}

func TestNearestSegmentIndexBendsTowardPerpendicular(t *testing.T) {
	polyline := []Vector{{0, 0}, {10, 0}, {10, 10}}

	// Inside the bend both segments admit a projection; the closer one wins.
	if got := NearestSegmentIndex(polyline, Vector{9, 2}); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if got := NearestSegmentIndex(polyline, Vector{8, 1}); got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}
