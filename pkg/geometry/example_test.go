package geometry_test

import (
	"fmt"

	"github.com/paperboard/paperboard/pkg/geometry"
)

func ExampleComputePolyline() {
	// Two 100x100 elements sitting side by side.
	source := geometry.RectShape(geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	target := geometry.RectShape(geometry.Rect{X: 200, Y: 0, Width: 100, Height: 100})

	polyline := geometry.ComputePolyline(source, target, nil)
	fmt.Println("Points:", polyline)
	fmt.Println("Length:", geometry.PolylineLength(polyline))
	// Output:
	// Points: [{100 50} {200 50}]
	// Length: 100
}

func ExamplePointAlongPolyline() {
	polyline := []geometry.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}}

	mid, _ := geometry.PointAlongPolyline(polyline, 5)
	past, _ := geometry.PointAlongPolyline(polyline, 100)
	fmt.Println("Midpoint:", mid)
	fmt.Println("Clamped:", past)
	// Output:
	// Midpoint: {5 0}
	// Clamped: {10 0}
}

func ExampleNearestSegmentIndex() {
	// Decide which segment receives a vertex dropped on the link body.
	polyline := []geometry.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}

	fmt.Println("Segment:", geometry.NearestSegmentIndex(polyline, geometry.Vector{X: 15, Y: 2}))
	// Output:
	// Segment: 1
}
