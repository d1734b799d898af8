package diagram

import (
	"slices"

	"github.com/paperboard/paperboard/pkg/graph"
)

// SelectionKind discriminates what a selection item refers to.
type SelectionKind int

const (
	SelectElement SelectionKind = iota
	SelectLink
	SelectLinkVertex
)

func (k SelectionKind) String() string {
	switch k {
	case SelectElement:
		return "element"
	case SelectLink:
		return "link"
	case SelectLinkVertex:
		return "link-vertex"
	default:
		return "unknown"
	}
}

// SelectionItem is one selected entity. Exactly one of Element or Link is
// set; for SelectLinkVertex, Link and VertexIndex address the routing
// point.
type SelectionItem struct {
	Kind        SelectionKind
	Element     *graph.Element
	Link        *graph.Link
	VertexIndex int
}

// SelectedElement wraps an element as a selection item.
func SelectedElement(e *graph.Element) SelectionItem {
	return SelectionItem{Kind: SelectElement, Element: e}
}

// SelectedLink wraps a link as a selection item.
func SelectedLink(l *graph.Link) SelectionItem {
	return SelectionItem{Kind: SelectLink, Link: l}
}

// SelectedLinkVertex wraps a link routing point as a selection item.
func SelectedLinkVertex(v graph.LinkVertex) SelectionItem {
	return SelectionItem{Kind: SelectLinkVertex, Link: v.Link, VertexIndex: v.Index}
}

// Selection returns the current selection in the order it was set.
func (m *Model) Selection() []SelectionItem {
	return slices.Clone(m.selection)
}

// SetSelection replaces the selection and notifies listeners. Items
// referring to entities no longer present in the store are dropped.
func (m *Model) SetSelection(items ...SelectionItem) {
	kept := make([]SelectionItem, 0, len(items))
	for _, it := range items {
		if m.itemAlive(it) {
			kept = append(kept, it)
		}
	}
	m.selection = kept
	m.notifySelection()
}

// ClearSelection empties the selection and notifies listeners.
func (m *Model) ClearSelection() {
	if len(m.selection) == 0 {
		return
	}
	m.selection = nil
	m.notifySelection()
}

// OnSelectionChange registers a callback fired synchronously after every
// selection change, including pruning caused by entity removal. The
// returned function unregisters it; calling it more than once is safe.
func (m *Model) OnSelectionChange(fn func([]SelectionItem)) func() {
	m.nextListener++
	id := m.nextListener
	m.selectionListeners = append(m.selectionListeners, listener{id: id, fn: fn})
	return func() {
		m.selectionListeners = slices.DeleteFunc(m.selectionListeners, func(l listener) bool {
			return l.id == id
		})
	}
}

func (m *Model) notifySelection() {
	snapshot := slices.Clone(m.selectionListeners)
	items := slices.Clone(m.selection)
	for _, l := range snapshot {
		l.fn(items)
	}
}

func (m *Model) itemAlive(it SelectionItem) bool {
	switch it.Kind {
	case SelectElement:
		if it.Element == nil {
			return false
		}
		_, ok := m.graph.Element(it.Element.ID())
		return ok
	case SelectLink:
		if it.Link == nil {
			return false
		}
		_, ok := m.graph.Link(it.Link.ID())
		return ok
	case SelectLinkVertex:
		if it.Link == nil {
			return false
		}
		if _, ok := m.graph.Link(it.Link.ID()); !ok {
			return false
		}
		return it.VertexIndex >= 0 && it.VertexIndex < len(it.Link.Vertices())
	default:
		return false
	}
}

// pruneSelection drops selection items whose entities were removed from
// the store. It runs on every store mutation so the selection can never
// dangle, including across undo and redo.
func (m *Model) pruneSelection(ev graph.Event) {
	switch ev.Kind {
	case graph.EventElementRemoved, graph.EventLinkRemoved, graph.EventLinkVerticesChanged, graph.EventReset:
	default:
		return
	}
	kept := slices.DeleteFunc(slices.Clone(m.selection), func(it SelectionItem) bool {
		return !m.itemAlive(it)
	})
	if len(kept) == len(m.selection) {
		return
	}
	m.selection = kept
	m.notifySelection()
}
