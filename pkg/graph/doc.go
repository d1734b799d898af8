// Package graph provides the authoritative in-memory store for diagram
// elements and links.
//
// # Overview
//
// A paperboard diagram is a mutable entity-relationship graph: elements
// (nodes) hold a position and an opaque state bag, links (directed edges)
// reference their endpoints by id and carry an ordered vertex sequence of
// routing points. The [Graph] owns the canonical id-indexed collections,
// preserves insertion order for deterministic z-order, and maintains two
// secondary indices: a (type, source, target) index for O(1) duplicate
// detection and a per-element incident-link index for adjacency queries.
//
// Links reference elements by id rather than by pointer. This keeps the
// graph serializable, avoids cyclic ownership, and guarantees that a link
// can never outlive its endpoints: [Graph.AddLink] requires both endpoints
// to be present and [Graph.RemoveElement] refuses to remove an element
// that still has incident links. Cascade deletion is deliberately left to
// the diagram facade so that every store mutation has a precise, minimal
// inverse for undo.
//
// # Change notifications
//
// Every observable mutation emits exactly one [Event] describing what
// changed. Events are delivered synchronously and in mutation order;
// when a listener runs, the store already reflects the mutation. Register
// listeners with [Graph.Subscribe], which returns an unsubscribe handle.
//
// # Concurrency
//
// A Graph is owned by a single diagram model and is not safe for
// concurrent use. All mutations are synchronous calls on the owning
// goroutine.
package graph
