package geometry

import "math"

// ComputePolyline builds the full routing path for a link between two
// shapes. The first segment is clipped by casting a ray from the source
// center toward the first vertex (or the target center when the link has
// no vertices), and symmetrically for the last segment. When no boundary
// intersection exists - both endpoints inside one shape, or a zero-size
// shape - the shape's center is used instead, so rendering stays stable
// while elements are still being measured or dragged on top of each other.
//
// The result is [start, vertices..., end] and always has at least two
// points.
func ComputePolyline(source, target Shape, vertices []Vector) []Vector {
	startRef := target.Center()
	if len(vertices) > 0 {
		startRef = vertices[0]
	}
	endRef := source.Center()
	if len(vertices) > 0 {
		endRef = vertices[len(vertices)-1]
	}

	start := clipToBoundary(source, startRef)
	end := clipToBoundary(target, endRef)

	polyline := make([]Vector, 0, len(vertices)+2)
	polyline = append(polyline, start)
	polyline = append(polyline, vertices...)
	polyline = append(polyline, end)
	return polyline
}

func clipToBoundary(shape Shape, toward Vector) Vector {
	if p, ok := IntersectRayFromShape(shape, toward); ok {
		return p
	}
	return shape.Center()
}

// PolylineLength returns the total length of the polyline, the sum of its
// segment lengths. Polylines with fewer than two points have length zero.
func PolylineLength(polyline []Vector) float64 {
	var total float64
	for i := 1; i < len(polyline); i++ {
		total += polyline[i].Distance(polyline[i-1])
	}
	return total
}

// PointAlongPolyline returns the point at the given offset along the
// polyline, walking cumulative segment lengths from the first point.
// Offsets below zero clamp to the first point and offsets at or beyond the
// total length clamp to the last point; the path is never extrapolated.
// It reports false only for polylines with fewer than two points.
func PointAlongPolyline(polyline []Vector, offset float64) (Vector, bool) {
	if len(polyline) < 2 {
		if len(polyline) == 1 {
			return polyline[0], true
		}
		return Vector{}, false
	}
	if offset <= 0 {
		return polyline[0], true
	}

	remaining := offset
	for i := 1; i < len(polyline); i++ {
		segment := polyline[i].Sub(polyline[i-1])
		length := segment.Length()
		if remaining < length {
			return polyline[i-1].Add(segment.Scale(remaining / length)), true
		}
		remaining -= length
	}
	return polyline[len(polyline)-1], true
}

// NearestSegmentIndex returns the index of the polyline segment closest to
// the given point. For each segment the point is projected onto the
// segment's line; projections falling outside [0, segmentLength] are
// discarded, and among the remaining candidates the segment with the
// smallest perpendicular distance wins, ties broken toward the lower
// index. Segment i spans polyline[i] to polyline[i+1].
//
// Returns -1 when the polyline has fewer than two points or no segment
// admits an in-range projection. Used to decide where a newly inserted
// vertex goes when the user drags on a link body.
func NearestSegmentIndex(polyline []Vector, point Vector) int {
	best := -1
	bestDistance := math.Inf(1)

	for i := 0; i+1 < len(polyline); i++ {
		segment := polyline[i+1].Sub(polyline[i])
		length := segment.Length()
		if length == 0 {
			continue
		}
		unit := segment.Scale(1 / length)
		projection := point.Sub(polyline[i]).Dot(unit)
		if projection < 0 || projection > length {
			continue
		}
		distance := math.Abs(point.Sub(polyline[i]).Cross(unit))
		if distance < bestDistance {
			bestDistance = distance
			best = i
		}
	}
	return best
}
