package graph

import (
	"errors"
	"slices"

	"github.com/paperboard/paperboard/pkg/geometry"
	"github.com/paperboard/paperboard/pkg/observability"
)

var (
	// ErrInvalidElementID is returned by [Graph.AddElement] when the
	// element id is empty. All entities must have non-empty identifiers.
	ErrInvalidElementID = errors.New("element ID must not be empty")

	// ErrDuplicateElementID is returned by [Graph.AddElement] when an
	// element with the same id already exists. Ids must be unique within
	// one store.
	ErrDuplicateElementID = errors.New("duplicate element ID")

	// ErrElementHasLinks is returned by [Graph.RemoveElement] when links
	// still reference the element. Incident links must be removed first;
	// the diagram facade does this inside a batch so undo can restore them.
	ErrElementHasLinks = errors.New("element still has incident links")

	// ErrInvalidLinkID is returned by [Graph.AddLink] when the link id is
	// empty.
	ErrInvalidLinkID = errors.New("link ID must not be empty")

	// ErrDuplicateLinkID is returned by [Graph.AddLink] when a link with
	// the same id already exists.
	ErrDuplicateLinkID = errors.New("duplicate link ID")

	// ErrDuplicateLink is returned by [Graph.AddLink] when a link with the
	// same (type, source, target) triple already exists. Whether to merge
	// into the existing link or give up is the caller's policy, not the
	// store's; use [Graph.FindLink] to locate the existing link.
	ErrDuplicateLink = errors.New("duplicate link for (type, source, target)")

	// ErrUnknownElement is returned when an operation references an
	// element id that is not present in the store.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnknownLink is returned when an operation references a link id
	// that is not present in the store.
	ErrUnknownLink = errors.New("unknown link")

	// ErrUnknownSourceElement is returned by [Graph.AddLink] when the
	// link's source element does not exist. The store never auto-creates
	// endpoints.
	ErrUnknownSourceElement = errors.New("unknown source element")

	// ErrUnknownTargetElement is returned by [Graph.AddLink] when the
	// link's target element does not exist.
	ErrUnknownTargetElement = errors.New("unknown target element")

	// ErrDanglingEndpoint is returned by [Graph.Validate] when a link
	// references a missing element. This indicates store corruption.
	ErrDanglingEndpoint = errors.New("link references a missing element")

	// ErrAdjacencyMismatch is returned by [Graph.Validate] when the
	// incident-link index diverges from the primary link map. This
	// indicates store corruption.
	ErrAdjacencyMismatch = errors.New("adjacency index out of sync")
)

// linkKey is the composite key for duplicate-link detection.
type linkKey struct {
	typeID   string
	sourceID string
	targetID string
}

// Graph is the mutable store of elements and links for one diagram.
// Insertion order of elements determines paint (z) order. The zero value
// is not usable - use [New]. Graph is not safe for concurrent use.
type Graph struct {
	elements     map[string]*Element
	elementOrder []string
	links        map[string]*Link
	linkOrder    []string
	linkIndex    map[linkKey]string  // (type, source, target) -> link id
	incident     map[string][]string // element id -> incident link ids

	listeners    []listener
	nextListener int
}

// New creates an empty graph store.
func New() *Graph {
	return &Graph{
		elements:  make(map[string]*Element),
		links:     make(map[string]*Link),
		linkIndex: make(map[linkKey]string),
		incident:  make(map[string][]string),
	}
}

// =============================================================================
// Element Operations
// =============================================================================

// AddElement inserts the element, appending it to the top of the z-order.
// Returns ErrInvalidElementID for an empty id or ErrDuplicateElementID
// when the id is already present.
func (g *Graph) AddElement(e *Element) error {
	return g.AddElementAt(e, len(g.elementOrder))
}

// AddElementAt inserts the element at the given z-order index, shifting
// later elements up. Indices outside [0, ElementCount] are clamped. Undo
// paths use this to put a removed element back at its prior depth instead
// of on top; z-order is observable state, so re-adding must restore it
// exactly.
func (g *Graph) AddElementAt(e *Element, index int) error {
	if e.id == "" {
		return ErrInvalidElementID
	}
	if _, exists := g.elements[e.id]; exists {
		return ErrDuplicateElementID
	}
	if index < 0 {
		index = 0
	}
	if index > len(g.elementOrder) {
		index = len(g.elementOrder)
	}
	g.elements[e.id] = e
	g.elementOrder = slices.Insert(g.elementOrder, index, e.id)

	observability.Graph().OnMutation(EventElementAdded.String(), e.id)
	g.emit(Event{Kind: EventElementAdded, Element: e, Incident: g.ElementLinks(e.id)})
	return nil
}

// RemoveElement removes the element with the given id. Removing an absent
// id is a successful no-op with no notification. Returns
// ErrElementHasLinks while links still reference the element; the store
// does not cascade-delete, so that removal has a precise single-step
// inverse.
func (g *Graph) RemoveElement(id string) error {
	e, ok := g.elements[id]
	if !ok {
		return nil
	}
	if len(g.incident[id]) > 0 {
		return ErrElementHasLinks
	}
	delete(g.elements, id)
	delete(g.incident, id)
	g.elementOrder = slices.DeleteFunc(g.elementOrder, func(s string) bool { return s == id })

	observability.Graph().OnMutation(EventElementRemoved.String(), id)
	g.emit(Event{Kind: EventElementRemoved, Element: e})
	return nil
}

// Element returns the element with the given id and true, or nil and
// false when not found.
func (g *Graph) Element(id string) (*Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Elements returns all elements in z-order (bottom first). The returned
// slice is freshly allocated; the pointed-to elements are live.
func (g *Graph) Elements() []*Element {
	out := make([]*Element, len(g.elementOrder))
	for i, id := range g.elementOrder {
		out[i] = g.elements[id]
	}
	return out
}

// ElementCount returns the number of elements.
func (g *Graph) ElementCount() int { return len(g.elements) }

// SetElementPosition moves the element to pos. Setting the current
// position is a successful no-op: no event fires because no observable
// state changed. Returns ErrUnknownElement for a missing id.
func (g *Graph) SetElementPosition(id string, pos geometry.Vector) error {
	e, ok := g.elements[id]
	if !ok {
		return ErrUnknownElement
	}
	if e.position.Equal(pos) {
		return nil
	}
	old := e.position
	e.position = pos

	observability.Graph().OnMutation(EventElementMoved.String(), id)
	g.emit(Event{Kind: EventElementMoved, Element: e, OldPosition: old})
	return nil
}

// SetElementState replaces the element's opaque state bag. The bag is
// opaque to the store, so no same-value detection happens here; callers
// should pass only real changes. Returns ErrUnknownElement for a missing
// id.
func (g *Graph) SetElementState(id string, state State) error {
	e, ok := g.elements[id]
	if !ok {
		return ErrUnknownElement
	}
	e.state = state

	observability.Graph().OnMutation(EventElementStateChanged.String(), id)
	g.emit(Event{Kind: EventElementStateChanged, Element: e})
	return nil
}

// SetLinkState replaces the link's opaque state bag. Returns
// ErrUnknownLink for a missing id.
func (g *Graph) SetLinkState(id string, state State) error {
	l, ok := g.links[id]
	if !ok {
		return ErrUnknownLink
	}
	l.state = state

	observability.Graph().OnMutation(EventLinkStateChanged.String(), id)
	g.emit(Event{Kind: EventLinkStateChanged, Link: l})
	return nil
}

// SortElements re-sorts the z-order according to cmp (as in
// [slices.SortStableFunc]). The entity set is unchanged. Consumers receive
// a reset event because paint order affects every cached visual. Whether a
// resort participates in undo history is decided by the diagram facade,
// not the store.
func (g *Graph) SortElements(cmp func(a, b *Element) int) {
	slices.SortStableFunc(g.elementOrder, func(x, y string) int {
		return cmp(g.elements[x], g.elements[y])
	})
	observability.Graph().OnReset(len(g.elements), len(g.links))
	g.emit(Event{Kind: EventReset})
}

// ZOrder returns the current element id order, bottom first.
func (g *Graph) ZOrder() []string { return slices.Clone(g.elementOrder) }

// =============================================================================
// Link Operations
// =============================================================================

// AddLink inserts the link. Both endpoints must already be present; the
// store never auto-creates elements. Returns ErrDuplicateLink when a link
// with the same (type, source, target) exists - merging into the existing
// link is caller policy - and ErrDuplicateLinkID / ErrInvalidLinkID /
// ErrUnknownSourceElement / ErrUnknownTargetElement accordingly.
func (g *Graph) AddLink(l *Link) error {
	return g.AddLinkAt(l, len(g.linkOrder))
}

// AddLinkAt inserts the link at the given position in the insertion
// order, shifting later links up. Indices outside [0, LinkCount] are
// clamped. Undo paths use this to put a removed link back at its prior
// position; insertion order is observable through [Graph.Links] and the
// serialized layout, so re-adding must restore it exactly.
func (g *Graph) AddLinkAt(l *Link, index int) error {
	if l.id == "" {
		return ErrInvalidLinkID
	}
	if _, exists := g.links[l.id]; exists {
		return ErrDuplicateLinkID
	}
	if _, ok := g.elements[l.sourceID]; !ok {
		return ErrUnknownSourceElement
	}
	if _, ok := g.elements[l.targetID]; !ok {
		return ErrUnknownTargetElement
	}
	key := linkKey{l.typeID, l.sourceID, l.targetID}
	if _, exists := g.linkIndex[key]; exists {
		return ErrDuplicateLink
	}

	if index < 0 {
		index = 0
	}
	if index > len(g.linkOrder) {
		index = len(g.linkOrder)
	}
	g.links[l.id] = l
	g.linkOrder = slices.Insert(g.linkOrder, index, l.id)
	g.linkIndex[key] = l.id
	g.incident[l.sourceID] = append(g.incident[l.sourceID], l.id)
	if l.targetID != l.sourceID {
		g.incident[l.targetID] = append(g.incident[l.targetID], l.id)
	}

	observability.Graph().OnMutation(EventLinkAdded.String(), l.id)
	g.emit(Event{Kind: EventLinkAdded, Link: l})
	return nil
}

// RemoveLink removes the link with the given id from the primary map, the
// duplicate index, and the adjacency index in one step; no observer can
// see them diverge. Removing an absent id is a successful no-op.
func (g *Graph) RemoveLink(id string) error {
	l, ok := g.links[id]
	if !ok {
		return nil
	}
	delete(g.links, id)
	delete(g.linkIndex, linkKey{l.typeID, l.sourceID, l.targetID})
	g.linkOrder = slices.DeleteFunc(g.linkOrder, func(s string) bool { return s == id })
	g.dropIncident(l.sourceID, id)
	if l.targetID != l.sourceID {
		g.dropIncident(l.targetID, id)
	}

	observability.Graph().OnMutation(EventLinkRemoved.String(), id)
	g.emit(Event{Kind: EventLinkRemoved, Link: l})
	return nil
}

func (g *Graph) dropIncident(elementID, linkID string) {
	g.incident[elementID] = slices.DeleteFunc(g.incident[elementID], func(s string) bool { return s == linkID })
	if len(g.incident[elementID]) == 0 {
		delete(g.incident, elementID)
	}
}

// Link returns the link with the given id and true, or nil and false when
// not found.
func (g *Graph) Link(id string) (*Link, bool) {
	l, ok := g.links[id]
	return l, ok
}

// Links returns all links in insertion order.
func (g *Graph) Links() []*Link {
	out := make([]*Link, len(g.linkOrder))
	for i, id := range g.linkOrder {
		out[i] = g.links[id]
	}
	return out
}

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return len(g.links) }

// ElementLinks returns the links incident to the element (as source or
// target), in link insertion order. The order is derived from the global
// link order rather than stored in the adjacency index, so removing and
// re-adding links cannot reorder an element's adjacency. Returns nil for
// an unknown or unconnected element.
func (g *Graph) ElementLinks(elementID string) []*Link {
	ids := g.incident[elementID]
	if len(ids) == 0 {
		return nil
	}
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}
	out := make([]*Link, 0, len(ids))
	for _, id := range g.linkOrder {
		if member[id] {
			out = append(out, g.links[id])
		}
	}
	return out
}

// FindLink returns the link with the given (type, source, target) triple
// and true, or nil and false when no such link exists. Lookup is O(1) via
// the duplicate index.
func (g *Graph) FindLink(typeID, sourceID, targetID string) (*Link, bool) {
	id, ok := g.linkIndex[linkKey{typeID, sourceID, targetID}]
	if !ok {
		return nil, false
	}
	return g.links[id], true
}

// SetLinkVertices replaces the link's routing points. Setting an identical
// sequence is a successful no-op with no event. Returns ErrUnknownLink for
// a missing id. The slice is not copied; callers must not retain it.
func (g *Graph) SetLinkVertices(id string, vertices []geometry.Vector) error {
	l, ok := g.links[id]
	if !ok {
		return ErrUnknownLink
	}
	if slices.Equal(l.vertices, vertices) {
		return nil
	}
	old := l.vertices
	l.vertices = vertices

	observability.Graph().OnMutation(EventLinkVerticesChanged.String(), id)
	g.emit(Event{Kind: EventLinkVerticesChanged, Link: l, OldVertices: old})
	return nil
}

// =============================================================================
// Bulk Operations and Integrity
// =============================================================================

// Reset replaces the entire graph content in one step and emits a single
// reset event. Elements are validated before anything is replaced, so a
// failed reset leaves the store untouched. Typically used when loading a
// persisted layout.
func (g *Graph) Reset(elements []*Element, links []*Link) error {
	staged := New()
	for _, e := range elements {
		if err := staged.addElementSilent(e); err != nil {
			return err
		}
	}
	for _, l := range links {
		if err := staged.addLinkSilent(l); err != nil {
			return err
		}
	}

	g.elements = staged.elements
	g.elementOrder = staged.elementOrder
	g.links = staged.links
	g.linkOrder = staged.linkOrder
	g.linkIndex = staged.linkIndex
	g.incident = staged.incident

	observability.Graph().OnReset(len(g.elements), len(g.links))
	g.emit(Event{Kind: EventReset})
	return nil
}

func (g *Graph) addElementSilent(e *Element) error {
	if e.id == "" {
		return ErrInvalidElementID
	}
	if _, exists := g.elements[e.id]; exists {
		return ErrDuplicateElementID
	}
	g.elements[e.id] = e
	g.elementOrder = append(g.elementOrder, e.id)
	return nil
}

func (g *Graph) addLinkSilent(l *Link) error {
	if l.id == "" {
		return ErrInvalidLinkID
	}
	if _, exists := g.links[l.id]; exists {
		return ErrDuplicateLinkID
	}
	if _, ok := g.elements[l.sourceID]; !ok {
		return ErrUnknownSourceElement
	}
	if _, ok := g.elements[l.targetID]; !ok {
		return ErrUnknownTargetElement
	}
	key := linkKey{l.typeID, l.sourceID, l.targetID}
	if _, exists := g.linkIndex[key]; exists {
		return ErrDuplicateLink
	}
	g.links[l.id] = l
	g.linkOrder = append(g.linkOrder, l.id)
	g.linkIndex[key] = l.id
	g.incident[l.sourceID] = append(g.incident[l.sourceID], l.id)
	if l.targetID != l.sourceID {
		g.incident[l.targetID] = append(g.incident[l.targetID], l.id)
	}
	return nil
}

// Validate checks store integrity and returns nil when consistent.
// It verifies that every link's endpoints resolve to present elements and
// that the adjacency index matches the primary link map exactly. These
// invariants hold at all times by construction; a failure indicates
// corruption, typically from callers mutating returned internals.
func (g *Graph) Validate() error {
	for _, l := range g.links {
		if _, ok := g.elements[l.sourceID]; !ok {
			return ErrDanglingEndpoint
		}
		if _, ok := g.elements[l.targetID]; !ok {
			return ErrDanglingEndpoint
		}
		if !slices.Contains(g.incident[l.sourceID], l.id) {
			return ErrAdjacencyMismatch
		}
		if !slices.Contains(g.incident[l.targetID], l.id) {
			return ErrAdjacencyMismatch
		}
	}
	for elementID, linkIDs := range g.incident {
		if _, ok := g.elements[elementID]; !ok {
			return ErrAdjacencyMismatch
		}
		for _, id := range linkIDs {
			l, ok := g.links[id]
			if !ok || !l.ConnectedTo(elementID) {
				return ErrAdjacencyMismatch
			}
		}
	}
	return nil
}
