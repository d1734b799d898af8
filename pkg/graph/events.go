package graph

import "github.com/paperboard/paperboard/pkg/geometry"

// EventKind discriminates change notifications. The shape of the event
// decides whether consumers re-scan incrementally or from scratch, so the
// cases are deliberately precise.
type EventKind int

const (
	// EventReset signals a bulk change: a full load, clear, or z-order
	// resort. Consumers must discard all cached derived state.
	EventReset EventKind = iota
	// EventElementAdded signals a single element insertion.
	EventElementAdded
	// EventElementRemoved signals a single element removal.
	EventElementRemoved
	// EventLinkAdded signals a single link insertion.
	EventLinkAdded
	// EventLinkRemoved signals a single link removal.
	EventLinkRemoved
	// EventElementMoved signals an element position change.
	EventElementMoved
	// EventLinkVerticesChanged signals a change to a link's routing points.
	EventLinkVerticesChanged
	// EventElementStateChanged signals a replacement of an element's
	// opaque state bag.
	EventElementStateChanged
	// EventLinkStateChanged signals a replacement of a link's opaque
	// state bag.
	EventLinkStateChanged
)

// String returns the kind's wire/log name.
func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventElementAdded:
		return "element-added"
	case EventElementRemoved:
		return "element-removed"
	case EventLinkAdded:
		return "link-added"
	case EventLinkRemoved:
		return "link-removed"
	case EventElementMoved:
		return "element-moved"
	case EventLinkVerticesChanged:
		return "link-vertices-changed"
	case EventElementStateChanged:
		return "element-state-changed"
	case EventLinkStateChanged:
		return "link-state-changed"
	default:
		return "unknown"
	}
}

// Event describes one observable store mutation. Only the fields relevant
// to Kind are set. When a listener receives an Event the store already
// reflects the mutation; there is no eventual-consistency window.
type Event struct {
	Kind EventKind

	// Element is set for element events.
	Element *Element
	// Link is set for link events.
	Link *Link

	// Incident lists the links incident to Element at the time of the
	// event. For EventElementRemoved it is empty by invariant (removal
	// requires links to be detached first); consumers tracking an
	// element's links should follow the preceding link-removed events.
	Incident []*Link

	// OldPosition is the previous position for EventElementMoved.
	OldPosition geometry.Vector
	// OldVertices is the previous vertex sequence for
	// EventLinkVerticesChanged.
	OldVertices []geometry.Vector
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers a listener for change notifications and returns an
// unsubscribe handle. Listeners are called synchronously, in registration
// order, in the exact order mutations were applied. Unsubscribing is
// idempotent.
func (g *Graph) Subscribe(fn func(Event)) (unsubscribe func()) {
	g.nextListener++
	id := g.nextListener
	g.listeners = append(g.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range g.listeners {
			if l.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

func (g *Graph) emit(ev Event) {
	// Snapshot so listeners can unsubscribe during delivery.
	current := g.listeners
	for _, l := range current {
		l.fn(ev)
	}
}
