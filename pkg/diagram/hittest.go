package diagram

import (
	"github.com/paperboard/paperboard/pkg/geometry"
	"github.com/paperboard/paperboard/pkg/graph"
)

// SizeProvider reports the rendered size of an element. The model stores
// no sizes itself; they belong to the presentation layer, which measures
// labels and shapes. Returning false means the element has not been
// rendered yet, in which case it occupies no space.
type SizeProvider func(elementID string) (geometry.Vector, bool)

// ElementShape returns the outline used for hit testing and link
// clipping: a rectangle of the provided size centered on the element's
// position. Elements without a reported size get a zero-size shape at
// their position, which contains no point and clips links to its center.
func (m *Model) ElementShape(e *graph.Element, sizes SizeProvider) geometry.Shape {
	size, ok := sizes(e.ID())
	if !ok {
		size = geometry.Vector{}
	}
	center := e.Position()
	return geometry.RectShape(geometry.Rect{
		X:      center.X - size.X/2,
		Y:      center.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	})
}

// FindElementAtPoint returns the topmost element whose outline strictly
// contains the point, or nil. Elements later in the z-order are drawn on
// top and therefore win.
func (m *Model) FindElementAtPoint(point geometry.Vector, sizes SizeProvider) *graph.Element {
	order := m.graph.ZOrder()
	for i := len(order) - 1; i >= 0; i-- {
		e, ok := m.graph.Element(order[i])
		if !ok {
			continue
		}
		shape := m.ElementShape(e, sizes)
		if shape.Bounds.Width <= 0 || shape.Bounds.Height <= 0 {
			continue
		}
		if shape.Bounds.Contains(point) {
			return e
		}
	}
	return nil
}

// LinkPolyline returns the rendered route of the link: source clip point,
// the routing vertices, then the target clip point. Endpoint shapes come
// from the same size provider the renderer uses, so hit testing agrees
// with what is on screen.
func (m *Model) LinkPolyline(l *graph.Link, sizes SizeProvider) []geometry.Vector {
	source, okSource := m.graph.Element(l.SourceID())
	target, okTarget := m.graph.Element(l.TargetID())
	if !okSource || !okTarget {
		return nil
	}
	return geometry.ComputePolyline(
		m.ElementShape(source, sizes),
		m.ElementShape(target, sizes),
		l.Vertices(),
	)
}
