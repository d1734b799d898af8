package diagram

import (
	"slices"

	"github.com/paperboard/paperboard/pkg/geometry"
	"github.com/paperboard/paperboard/pkg/history"
)

// GeometrySnapshot records element positions and link routing points at a
// moment in time. Interactive tools capture one before a drag gesture and
// register it afterwards so the whole gesture undoes in one step.
type GeometrySnapshot struct {
	positions map[string]geometry.Vector
	vertices  map[string][]geometry.Vector
}

// CaptureGeometry snapshots the position of every element and the
// vertices of every link. Capturing is cheap relative to an editing
// gesture; tools may capture eagerly and discard unused snapshots.
func (m *Model) CaptureGeometry() GeometrySnapshot {
	s := GeometrySnapshot{
		positions: make(map[string]geometry.Vector),
		vertices:  make(map[string][]geometry.Vector),
	}
	for _, e := range m.graph.Elements() {
		s.positions[e.ID()] = e.Position()
	}
	for _, l := range m.graph.Links() {
		s.vertices[l.ID()] = slices.Clone(l.Vertices())
	}
	return s
}

// RegisterGeometryRestore records an undo entry that restores the
// snapshot's geometry, without re-applying the current state. Entities
// whose geometry is unchanged, or which no longer exist, are skipped; if
// nothing changed, no entry is recorded. The gesture itself must have
// mutated the store directly (bypassing the history), which is exactly
// what direct manipulation tools do during a drag.
func (m *Model) RegisterGeometryRestore(s GeometrySnapshot) {
	cmds := m.geometryDiff(s)
	if len(cmds) == 0 {
		return
	}
	if len(cmds) == 1 {
		m.history.RegisterToUndo(cmds[0])
		return
	}
	m.history.RegisterToUndo(history.Sequence(cmds...))
}

// geometryDiff builds the self-dual commands that would move each changed
// entity from its current geometry back to the snapshot's.
func (m *Model) geometryDiff(s GeometrySnapshot) []history.Command {
	var cmds []history.Command
	for _, e := range m.graph.Elements() {
		old, ok := s.positions[e.ID()]
		if !ok || old.Equal(e.Position()) {
			continue
		}
		cmds = append(cmds, setPositionCommand(m.graph, e.ID(), old))
	}
	for _, l := range m.graph.Links() {
		old, ok := s.vertices[l.ID()]
		if !ok || slices.Equal(old, l.Vertices()) {
			continue
		}
		cmds = append(cmds, setVerticesCommand(m.graph, l.ID(), slices.Clone(old)))
	}
	return cmds
}
