// Package geometry provides the pure 2D math used for link routing and
// hit-testing on the diagram canvas.
//
// # Overview
//
// Paperboard routes links between diagram elements as polylines clipped to
// the element boundaries. This package provides the vector and rectangle
// primitives, ray-shape intersection, polyline construction and queries,
// and SVG path conversion that power both rendering and interactive
// editing (vertex insertion, hit-testing along a link body).
//
// All functions are pure and deterministic. Degenerate inputs (zero-size
// shapes, containing shapes, empty polylines) resolve to documented
// fallbacks rather than errors, because they are expected transient states
// during interactive editing - for example an element whose size has not
// been measured yet.
//
// # Basic Usage
//
// Build a link path between two element shapes with [ComputePolyline],
// then convert it to drawable path data with [PathFromPolyline] or
// [SmoothPathFromPolyline]:
//
//	source := geometry.RectShape(geometry.Rect{X: 0, Y: 0, Width: 100, Height: 100})
//	target := geometry.RectShape(geometry.Rect{X: 200, Y: 0, Width: 100, Height: 100})
//	polyline := geometry.ComputePolyline(source, target, nil)
//	path := geometry.PathFromPolyline(polyline)
//
// Query the path with [PolylineLength], [PointAlongPolyline], and
// [NearestSegmentIndex].
package geometry
