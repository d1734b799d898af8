package geometry

import "math"

// Vector is an immutable 2D point or displacement in paper coordinates.
// The zero value is the origin. All arithmetic methods return new values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum v + o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by the scalar s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z-component of the 3D cross product of v and o.
// The sign indicates which side of v the vector o lies on.
func (v Vector) Cross(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in the direction of v.
// By convention the zero vector normalizes to the zero vector, so callers
// never have to special-case degenerate directions.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length}
}

// Equal reports whether v and o have identical coordinates.
func (v Vector) Equal(o Vector) bool { return v.X == o.X && v.Y == o.Y }

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 { return o.Sub(v).Length() }

// Rect is an axis-aligned bounding box in paper coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

// Intersects reports whether r and o overlap. Shared edges count as an
// intersection (closed-interval semantics), so two rectangles that merely
// touch are considered intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.Width && o.X <= r.X+r.Width &&
		r.Y <= o.Y+o.Height && o.Y <= r.Y+r.Height
}

// Contains reports whether the point p lies inside r or on its boundary.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ShapeKind identifies the boundary geometry of a diagram element.
type ShapeKind int

const (
	// KindRect treats the element boundary as its bounding rectangle.
	// Shapes without an exact formula are approximated as rectangles.
	KindRect ShapeKind = iota
	// KindEllipse treats the element boundary as the ellipse inscribed
	// in its bounding rectangle.
	KindEllipse
)

// Shape is a tagged boundary geometry used for ray intersection.
// Construct values with RectShape or EllipseShape.
type Shape struct {
	Kind   ShapeKind
	Bounds Rect
}

// RectShape returns a rectangular shape over the given bounds.
func RectShape(bounds Rect) Shape { return Shape{Kind: KindRect, Bounds: bounds} }

// EllipseShape returns an elliptical shape inscribed in the given bounds.
func EllipseShape(bounds Rect) Shape { return Shape{Kind: KindEllipse, Bounds: bounds} }

// Center returns the center of the shape's bounds.
func (s Shape) Center() Vector { return s.Bounds.Center() }
