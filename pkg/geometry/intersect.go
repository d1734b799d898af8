package geometry

import "math"

// IntersectRayFromShape returns the point where the ray cast from the
// shape's center toward target crosses the shape boundary. It reports
// false when target lies strictly inside the shape, in which case there
// is no meaningful boundary crossing. Zero-size shapes never contain the
// target, so a degenerate shape always reports true with its center as
// the intersection.
func IntersectRayFromShape(shape Shape, target Vector) (Vector, bool) {
	switch shape.Kind {
	case KindEllipse:
		return intersectRayFromEllipse(shape.Bounds, target)
	default:
		return intersectRayFromRect(shape.Bounds, target)
	}
}

// intersectRayFromRect clips the ray against the rectangle boundary.
// The edge (vertical vs horizontal) is chosen by comparing the direction
// vector against the rectangle's half-diagonal vectors via cross products,
// which keeps corner ties consistent across all callers.
func intersectRayFromRect(bounds Rect, target Vector) (Vector, bool) {
	if strictlyInsideRect(bounds, target) {
		return Vector{}, false
	}

	center := bounds.Center()
	direction := target.Sub(center)
	if direction.X == 0 && direction.Y == 0 {
		return center, true
	}

	halfW := bounds.Width / 2
	halfH := bounds.Height / 2

	// Mirror the direction into the right half-plane; the rectangle is
	// symmetric, so only the sign of X has to be restored afterwards.
	mirrored := Vector{math.Abs(direction.X), direction.Y}
	diagUp := Vector{halfW, -halfH}
	diagDown := Vector{halfW, halfH}

	if diagUp.Cross(mirrored) > 0 && diagDown.Cross(mirrored) < 0 {
		// The ray exits through the left or right edge.
		return Vector{
			X: center.X + halfW*sign(direction.X),
			Y: center.Y + halfW*direction.Y/math.Abs(direction.X),
		}, true
	}
	// The ray exits through the top or bottom edge.
	return Vector{
		X: center.X + halfH*direction.X/math.Abs(direction.Y),
		Y: center.Y + halfH*sign(direction.Y),
	}, true
}

// intersectRayFromEllipse clips the ray against the ellipse inscribed in
// bounds by normalizing the direction and scaling it by the semi-axes.
func intersectRayFromEllipse(bounds Rect, target Vector) (Vector, bool) {
	if strictlyInsideEllipse(bounds, target) {
		return Vector{}, false
	}

	center := bounds.Center()
	unit := target.Sub(center).Normalize()
	if unit.X == 0 && unit.Y == 0 {
		return center, true
	}
	return Vector{
		X: center.X + unit.X*bounds.Width/2,
		Y: center.Y + unit.Y*bounds.Height/2,
	}, true
}

// strictlyInsideRect uses strict inequalities so that boundary points and
// any point relative to a zero-size rectangle count as outside.
func strictlyInsideRect(bounds Rect, p Vector) bool {
	return p.X > bounds.X && p.X < bounds.X+bounds.Width &&
		p.Y > bounds.Y && p.Y < bounds.Y+bounds.Height
}

func strictlyInsideEllipse(bounds Rect, p Vector) bool {
	halfW := bounds.Width / 2
	halfH := bounds.Height / 2
	if halfW == 0 || halfH == 0 {
		return false
	}
	center := bounds.Center()
	dx := (p.X - center.X) / halfW
	dy := (p.Y - center.Y) / halfH
	return dx*dx+dy*dy < 1
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
