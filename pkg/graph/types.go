package graph

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/paperboard/paperboard/pkg/geometry"
)

// NewID generates a random 128-bit identifier encoded as 32 hex
// characters. Ids are unique within a store for its lifetime; collisions
// across stores are never reconciled, so externally supplied ids should
// come from the same generator or a comparable source.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// State is the opaque per-entity bag of template-specific key/value pairs,
// for flags such as expanded/collapsed. Values must be JSON-serializable.
// A nil State is valid and treated as empty.
type State map[string]any

// Clone returns a shallow copy of the state bag, or nil for an empty one.
func (s State) Clone() State {
	if len(s) == 0 {
		return nil
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Element is a node on the diagram. The id is immutable and unique within
// one store; position and state are mutated through the owning [Graph] so
// that changes are observable.
type Element struct {
	id       string
	position geometry.Vector
	state    State
}

// NewElement creates an element with the given id, or a generated one when
// id is empty.
func NewElement(id string) *Element {
	if id == "" {
		id = NewID()
	}
	return &Element{id: id}
}

// ID returns the immutable element id.
func (e *Element) ID() string { return e.id }

// Position returns the element's current position on the paper.
func (e *Element) Position() geometry.Vector { return e.position }

// State returns the element's opaque state bag. The returned map is the
// live bag; treat it as read-only and mutate through [Graph.SetElementState].
func (e *Element) State() State { return e.state }

// Link is a directed edge between two elements. Source, target and type
// are immutable; the vertex sequence and state bag are mutated through the
// owning [Graph].
type Link struct {
	id       string
	typeID   string
	sourceID string
	targetID string
	vertices []geometry.Vector
	state    State
}

// NewLink creates a link of the given type between two element ids.
// An empty id is replaced with a generated one. The endpoints are not
// checked here; [Graph.AddLink] validates them on insertion.
func NewLink(id, typeID, sourceID, targetID string) *Link {
	if id == "" {
		id = NewID()
	}
	return &Link{id: id, typeID: typeID, sourceID: sourceID, targetID: targetID}
}

// ID returns the immutable link id.
func (l *Link) ID() string { return l.id }

// TypeID returns the link type IRI.
func (l *Link) TypeID() string { return l.typeID }

// SourceID returns the id of the source element.
func (l *Link) SourceID() string { return l.sourceID }

// TargetID returns the id of the target element.
func (l *Link) TargetID() string { return l.targetID }

// Vertices returns the link's intermediate routing points in order.
// The returned slice is the live sequence; treat it as read-only.
func (l *Link) Vertices() []geometry.Vector { return l.vertices }

// State returns the link's opaque state bag.
func (l *Link) State() State { return l.state }

// ConnectedTo reports whether the link has the given element as source or
// target.
func (l *Link) ConnectedTo(elementID string) bool {
	return l.sourceID == elementID || l.targetID == elementID
}

// LinkVertex addresses one routing point inside a link's vertex sequence.
// It is a derived, non-owning reference used during vertex editing, not a
// stored entity; it becomes stale when the vertex sequence changes.
type LinkVertex struct {
	Link  *Link
	Index int
}

// Position returns the addressed vertex, or false when the reference is
// out of range for the link's current vertex sequence.
func (v LinkVertex) Position() (geometry.Vector, bool) {
	if v.Link == nil || v.Index < 0 || v.Index >= len(v.Link.vertices) {
		return geometry.Vector{}, false
	}
	return v.Link.vertices[v.Index], true
}

// LocalizedText is a language-tagged label. Lang is a BCP 47 tag such as
// "en" or "de-CH".
type LocalizedText struct {
	Text string `json:"text"`
	Lang string `json:"lang,omitempty"`
}

// ElementType is descriptive metadata for a class of elements, identified
// by an IRI. Types are created lazily on first reference and cached by the
// diagram model; they never own elements.
type ElementType struct {
	IRI    string
	Labels []LocalizedText
}

// LinkType is descriptive metadata for a class of links, identified by an
// IRI.
type LinkType struct {
	IRI    string
	Labels []LocalizedText
}

// PropertyType is descriptive metadata for a property IRI shown in element
// templates.
type PropertyType struct {
	IRI    string
	Labels []LocalizedText
}
