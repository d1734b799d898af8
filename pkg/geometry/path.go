package geometry

import (
	"fmt"
	"strings"
)

// smoothness scales the neighbor tangents used as cubic-Bezier control
// points in SmoothPathFromPolyline. The value matches the visual tuning
// of the web renderer and must not change between releases, or saved
// diagrams would shift appearance.
const smoothness = 0.25

// PathFromPolyline converts a polyline into SVG path data made of straight
// line segments ("M x y L x y ..."). An empty or single-point polyline
// produces an empty string.
func PathFromPolyline(polyline []Vector) string {
	if len(polyline) < 2 {
		return ""
	}
	var b strings.Builder
	writeCommand(&b, "M", polyline[0])
	for _, p := range polyline[1:] {
		writeCommand(&b, "L", p)
	}
	return b.String()
}

// SmoothPathFromPolyline converts a polyline into SVG path data using
// cubic Bezier segments. Control points are derived from the tangents of
// neighboring segments scaled by a fixed smoothness factor, producing a
// spline that passes through every polyline point. Polylines with fewer
// than three points degrade to straight segments.
func SmoothPathFromPolyline(polyline []Vector) string {
	if len(polyline) < 3 {
		return PathFromPolyline(polyline)
	}

	var b strings.Builder
	writeCommand(&b, "M", polyline[0])

	for i := 0; i+1 < len(polyline); i++ {
		current := polyline[i]
		next := polyline[i+1]

		// Tangent at each endpoint uses the surrounding points, clamped
		// at the polyline ends.
		prev := polyline[max(i-1, 0)]
		after := polyline[min(i+2, len(polyline)-1)]

		control1 := current.Add(next.Sub(prev).Scale(smoothness))
		control2 := next.Sub(after.Sub(current).Scale(smoothness))

		writeCommand(&b, "C", control1)
		b.WriteString(fmt.Sprintf(" %v %v %v %v", control2.X, control2.Y, next.X, next.Y))
	}
	return b.String()
}

func writeCommand(b *strings.Builder, op string, p Vector) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	fmt.Fprintf(b, "%s %v %v", op, p.X, p.Y)
}
