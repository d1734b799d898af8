package diagram

import (
	"fmt"
	"slices"

	"github.com/paperboard/paperboard/pkg/geometry"
	"github.com/paperboard/paperboard/pkg/graph"
	"github.com/paperboard/paperboard/pkg/history"
)

// The command constructors below wrap single store mutations as self-dual
// commands. The model validates preconditions before executing a command,
// so an error out of the store at invoke time means the command was
// invoked out of stack order - a programming error the history does not
// recover from.

func mustApply(err error) {
	if err != nil {
		panic(fmt.Sprintf("diagram: command invoked out of stack order: %v", err))
	}
}

func addElementCommand(g *graph.Graph, e *graph.Element) history.Command {
	return history.CommandFunc(func() history.Command {
		mustApply(g.AddElement(e))
		return removeElementCommand(g, e)
	})
}

// removeElementCommand captures the element's z-order index before
// removing it; the inverse re-inserts at that index, not on top.
// Insertion order is observable state, so undo must restore it exactly.
func removeElementCommand(g *graph.Graph, e *graph.Element) history.Command {
	return history.CommandFunc(func() history.Command {
		index := slices.Index(g.ZOrder(), e.ID())
		mustApply(g.RemoveElement(e.ID()))
		return addElementAtCommand(g, e, index)
	})
}

func addElementAtCommand(g *graph.Graph, e *graph.Element, index int) history.Command {
	return history.CommandFunc(func() history.Command {
		mustApply(g.AddElementAt(e, index))
		return removeElementCommand(g, e)
	})
}

func addLinkCommand(g *graph.Graph, l *graph.Link) history.Command {
	return history.CommandFunc(func() history.Command {
		mustApply(g.AddLink(l))
		return removeLinkCommand(g, l)
	})
}

// removeLinkCommand mirrors removeElementCommand: the inverse restores
// the link at its original position in the insertion order.
func removeLinkCommand(g *graph.Graph, l *graph.Link) history.Command {
	return history.CommandFunc(func() history.Command {
		index := slices.IndexFunc(g.Links(), func(x *graph.Link) bool { return x.ID() == l.ID() })
		mustApply(g.RemoveLink(l.ID()))
		return addLinkAtCommand(g, l, index)
	})
}

func addLinkAtCommand(g *graph.Graph, l *graph.Link, index int) history.Command {
	return history.CommandFunc(func() history.Command {
		mustApply(g.AddLinkAt(l, index))
		return removeLinkCommand(g, l)
	})
}

func setPositionCommand(g *graph.Graph, id string, pos geometry.Vector) history.Command {
	return history.CommandFunc(func() history.Command {
		e, ok := g.Element(id)
		if !ok {
			mustApply(graph.ErrUnknownElement)
		}
		old := e.Position()
		mustApply(g.SetElementPosition(id, pos))
		return setPositionCommand(g, id, old)
	})
}

func setVerticesCommand(g *graph.Graph, id string, vertices []geometry.Vector) history.Command {
	return history.CommandFunc(func() history.Command {
		l, ok := g.Link(id)
		if !ok {
			mustApply(graph.ErrUnknownLink)
		}
		old := slices.Clone(l.Vertices())
		mustApply(g.SetLinkVertices(id, vertices))
		return setVerticesCommand(g, id, old)
	})
}

func setElementStateCommand(g *graph.Graph, id string, state graph.State) history.Command {
	return history.CommandFunc(func() history.Command {
		e, ok := g.Element(id)
		if !ok {
			mustApply(graph.ErrUnknownElement)
		}
		old := e.State()
		mustApply(g.SetElementState(id, state))
		return setElementStateCommand(g, id, old)
	})
}

// zOrderCommand captures the current z-order and applies the target
// order; its inverse restores the captured order. Only used when z-order
// tracking is enabled in the configuration.
func zOrderCommand(g *graph.Graph, order []string) history.Command {
	return history.CommandFunc(func() history.Command {
		old := g.ZOrder()
		applyZOrder(g, order)
		return zOrderCommand(g, old)
	})
}

func applyZOrder(g *graph.Graph, order []string) {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	g.SortElements(func(a, b *graph.Element) int {
		return pos[a.ID()] - pos[b.ID()]
	})
}
