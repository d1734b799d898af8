package diagram

import (
	"slices"

	"github.com/paperboard/paperboard/pkg/config"
	"github.com/paperboard/paperboard/pkg/geometry"
	"github.com/paperboard/paperboard/pkg/graph"
	"github.com/paperboard/paperboard/pkg/history"
)

// Model is the diagram facade. It owns one graph store, one command
// history, and the selection state; external collaborators mutate the
// diagram exclusively through its methods so that every change is
// undoable. Not safe for concurrent use.
type Model struct {
	graph   *graph.Graph
	history *history.History
	cfg     config.Config

	selection          []SelectionItem
	selectionListeners []listener

	elementTypes  map[string]*graph.ElementType
	linkTypes     map[string]*graph.LinkType
	propertyTypes map[string]*graph.PropertyType

	nextListener int
}

type listener struct {
	id int
	fn func([]SelectionItem)
}

// New creates a model with the given configuration. Use
// [config.Default] when no configuration file applies.
func New(cfg config.Config) *Model {
	m := &Model{
		graph:         graph.New(),
		history:       history.NewLimited(cfg.History.Limit),
		cfg:           cfg,
		elementTypes:  make(map[string]*graph.ElementType),
		linkTypes:     make(map[string]*graph.LinkType),
		propertyTypes: make(map[string]*graph.PropertyType),
	}
	m.graph.Subscribe(m.pruneSelection)
	return m
}

// Graph returns the underlying store for queries and event subscription.
// Mutations must go through the model, not the store, or they will not be
// undoable.
func (m *Model) Graph() *graph.Graph { return m.graph }

// History returns the command history for undo/redo and batch control.
func (m *Model) History() *history.History { return m.history }

// =============================================================================
// Mutations
// =============================================================================

// AddElement inserts the element as an undoable edit. Returns the store's
// validation error (duplicate or empty id) without touching the history.
func (m *Model) AddElement(e *graph.Element) error {
	if e.ID() == "" {
		return graph.ErrInvalidElementID
	}
	if _, exists := m.graph.Element(e.ID()); exists {
		return graph.ErrDuplicateElementID
	}
	m.history.Execute(addElementCommand(m.graph, e))
	return nil
}

// RemoveElement removes the element together with its incident links as a
// single undo entry; undoing restores the element and every link.
// Removing an absent id is a successful no-op that records nothing.
func (m *Model) RemoveElement(id string) error {
	e, ok := m.graph.Element(id)
	if !ok {
		return nil
	}
	b := m.history.StartBatch("remove element")
	for _, l := range m.graph.ElementLinks(id) {
		m.history.Execute(removeLinkCommand(m.graph, l))
	}
	m.history.Execute(removeElementCommand(m.graph, e))
	b.Store()
	return nil
}

// AddLink inserts the link as an undoable edit. Both endpoints must be
// present. When a link with the same (type, source, target) already
// exists the call fails with [graph.ErrDuplicateLink]; whether to merge
// into the existing link (see [Model.FindLink]) is the caller's policy.
func (m *Model) AddLink(l *graph.Link) error {
	if l.ID() == "" {
		return graph.ErrInvalidLinkID
	}
	if _, exists := m.graph.Link(l.ID()); exists {
		return graph.ErrDuplicateLinkID
	}
	if _, ok := m.graph.Element(l.SourceID()); !ok {
		return graph.ErrUnknownSourceElement
	}
	if _, ok := m.graph.Element(l.TargetID()); !ok {
		return graph.ErrUnknownTargetElement
	}
	if _, exists := m.graph.FindLink(l.TypeID(), l.SourceID(), l.TargetID()); exists {
		return graph.ErrDuplicateLink
	}
	m.history.Execute(addLinkCommand(m.graph, l))
	return nil
}

// RemoveLink removes the link as an undoable edit. Removing an absent id
// is a successful no-op that records nothing.
func (m *Model) RemoveLink(id string) error {
	l, ok := m.graph.Link(id)
	if !ok {
		return nil
	}
	m.history.Execute(removeLinkCommand(m.graph, l))
	return nil
}

// SetPosition moves an element as an undoable edit. Setting the current
// position is a successful no-op: no event fires and no undo entry is
// created.
func (m *Model) SetPosition(id string, pos geometry.Vector) error {
	e, ok := m.graph.Element(id)
	if !ok {
		return graph.ErrUnknownElement
	}
	if e.Position().Equal(pos) {
		return nil
	}
	m.history.Execute(setPositionCommand(m.graph, id, pos))
	return nil
}

// SetVertices replaces a link's routing points as an undoable edit.
// An identical sequence is a successful no-op.
func (m *Model) SetVertices(id string, vertices []geometry.Vector) error {
	l, ok := m.graph.Link(id)
	if !ok {
		return graph.ErrUnknownLink
	}
	if slices.Equal(l.Vertices(), vertices) {
		return nil
	}
	m.history.Execute(setVerticesCommand(m.graph, id, slices.Clone(vertices)))
	return nil
}

// SetElementState replaces an element's opaque state bag as an undoable
// edit.
func (m *Model) SetElementState(id string, state graph.State) error {
	if _, ok := m.graph.Element(id); !ok {
		return graph.ErrUnknownElement
	}
	m.history.Execute(setElementStateCommand(m.graph, id, state))
	return nil
}

// AddLinkVertex inserts a routing point on the link at the position the
// user dragged. The insertion slot is chosen by projecting the point onto
// the link's current polyline and picking the nearest segment; vertex i
// lands between polyline points i and i+1. Returns the reference of the
// inserted vertex.
func (m *Model) AddLinkVertex(linkID string, point geometry.Vector, sizes SizeProvider) (graph.LinkVertex, error) {
	l, ok := m.graph.Link(linkID)
	if !ok {
		return graph.LinkVertex{}, graph.ErrUnknownLink
	}

	polyline := m.LinkPolyline(l, sizes)
	index := geometry.NearestSegmentIndex(polyline, point)
	if index < 0 {
		index = len(l.Vertices())
	}

	vertices := slices.Insert(slices.Clone(l.Vertices()), index, point)
	m.history.Execute(setVerticesCommand(m.graph, linkID, vertices))
	return graph.LinkVertex{Link: l, Index: index}, nil
}

// RemoveLinkVertex deletes the addressed routing point as an undoable
// edit. A stale reference (index out of range) is a no-op.
func (m *Model) RemoveLinkVertex(v graph.LinkVertex) error {
	if v.Link == nil {
		return graph.ErrUnknownLink
	}
	if _, ok := v.Position(); !ok {
		return nil
	}
	vertices := slices.Delete(slices.Clone(v.Link.Vertices()), v.Index, v.Index+1)
	m.history.Execute(setVerticesCommand(m.graph, v.Link.ID(), vertices))
	return nil
}

// BringToFront moves the given elements to the top of the z-order,
// preserving their relative order. Whether the resort is recorded as an
// undoable edit is controlled by the history.track_z_order configuration;
// by default it is a view-only change.
func (m *Model) BringToFront(ids ...string) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	order := m.graph.ZOrder()
	front := make([]string, 0, len(order))
	back := make([]string, 0, len(ids))
	for _, id := range order {
		if selected[id] {
			back = append(back, id)
		} else {
			front = append(front, id)
		}
	}
	target := append(front, back...)
	if slices.Equal(order, target) {
		return
	}

	if m.cfg.History.TrackZOrder {
		m.history.Execute(zOrderCommand(m.graph, target))
		return
	}
	applyZOrder(m.graph, target)
}

// WithBatch runs fn inside a batch labeled for inspection tooling. The
// batch commits as one undo entry when fn returns nil and rolls back
// entirely - restoring the pre-batch state and recording nothing - when
// fn returns an error, such as the context error of an abandoned gesture.
func (m *Model) WithBatch(label string, fn func() error) error {
	b := m.history.StartBatch(label)
	if err := fn(); err != nil {
		b.Discard()
		return err
	}
	b.Store()
	return nil
}

// =============================================================================
// Get-or-Create
// =============================================================================

// CreateElement returns the element for the given logical key, creating
// and adding it when absent. The key doubles as the element id, so
// repeatedly referencing the same external entity never produces
// duplicates. The creation, if any, is an undoable edit.
func (m *Model) CreateElement(key string) (*graph.Element, error) {
	if key == "" {
		return nil, graph.ErrInvalidElementID
	}
	if e, ok := m.graph.Element(key); ok {
		return e, nil
	}
	e := graph.NewElement(key)
	if err := m.AddElement(e); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateElementType returns the cached type metadata for the IRI,
// creating it lazily on first reference. The same IRI always yields the
// same instance within one model.
func (m *Model) CreateElementType(iri string) *graph.ElementType {
	if t, ok := m.elementTypes[iri]; ok {
		return t
	}
	t := &graph.ElementType{IRI: iri}
	m.elementTypes[iri] = t
	return t
}

// CreateLinkType returns the cached link-type metadata for the IRI,
// creating it lazily on first reference.
func (m *Model) CreateLinkType(iri string) *graph.LinkType {
	if t, ok := m.linkTypes[iri]; ok {
		return t
	}
	t := &graph.LinkType{IRI: iri}
	m.linkTypes[iri] = t
	return t
}

// CreatePropertyType returns the cached property-type metadata for the
// IRI, creating it lazily on first reference.
func (m *Model) CreatePropertyType(iri string) *graph.PropertyType {
	if t, ok := m.propertyTypes[iri]; ok {
		return t
	}
	t := &graph.PropertyType{IRI: iri}
	m.propertyTypes[iri] = t
	return t
}

// FindLink returns the link with the given (type, source, target) triple,
// if present.
func (m *Model) FindLink(typeID, sourceID, targetID string) (*graph.Link, bool) {
	return m.graph.FindLink(typeID, sourceID, targetID)
}
