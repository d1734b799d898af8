// Package pkg provides the core libraries of the Paperboard diagram toolkit.
//
// # Overview
//
// Paperboard is the headless core of an interactive diagram editor: a
// renderer-agnostic graph store with command-based undo/redo, geometry
// routines for connection routing and hit testing, and a facade that ties
// them together for editor frontends. The pkg directory is organized into
// four main areas:
//
//  1. [geometry] - Vectors, shapes, ray clipping, polylines, SVG paths
//  2. [graph] - Element/link store with events and JSON serialization
//  3. [history] - Self-inverting commands, undo/redo stacks, batches
//  4. [diagram] - Facade combining store, history, selection, hit testing
//
// # Architecture
//
// The typical data flow through an editor built on Paperboard:
//
//	User gesture (click, drag, keystroke)
//	         ↓
//	    [diagram] package (validate, wrap as undoable commands)
//	         ↓
//	    [history] package (execute, record inverses)
//	         ↓
//	    [graph] package (mutate store, emit events)
//	         ↓
//	    Renderer redraws from events, using [geometry] for routing
//
// # Quick Start
//
// Build a small diagram and undo an edit:
//
//	import (
//	    "github.com/paperboard/paperboard/pkg/config"
//	    "github.com/paperboard/paperboard/pkg/diagram"
//	    "github.com/paperboard/paperboard/pkg/graph"
//	)
//
//	m := diagram.New(config.Default())
//	order, _ := m.CreateElement("order")
//	invoice, _ := m.CreateElement("invoice")
//	_ = m.AddLink(graph.NewLink("", "produces", order.ID(), invoice.ID()))
//
//	m.History().Undo() // removes the link again
//
// # Main Packages
//
// [geometry] - Pure computational geometry with no store dependencies:
// vector algebra, rectangle and ellipse shapes, ray-from-shape clipping,
// polyline construction between shapes, nearest-segment search, and SVG
// path generation with optional Bezier smoothing.
//
// [graph] - The diagram store. Elements and links live in insertion order
// (which doubles as z-order), links reference endpoints by id, and every
// mutation emits a synchronous typed event. The [graph.Layout] types
// define the canonical JSON serialization format.
//
// [history] - The undo engine. A [history.Command] returns its own
// inverse when invoked, so the undo and redo stacks hold plain commands
// with no snapshotting. Batches collapse many edits into one undoable
// step and roll back cleanly when discarded.
//
// [diagram] - The editor facade. Wraps store mutations as commands,
// removes elements together with their incident links, maintains the
// selection across removals and undo, resolves localized labels, and
// provides hit testing and link routing on top of a renderer-supplied
// size provider.
//
// ## Supporting Packages
//
// [config] - TOML configuration for history depth, z-order tracking, and
// label language.
//
// [observability] - Process-wide hooks for instrumenting store mutations
// and history activity without coupling the core to a metrics backend.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/graph/...    # Specific package
//	go test -run Example       # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/geometry
// [graph]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/graph
// [history]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/history
// [diagram]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/diagram
// [config]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/config
// [observability]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/paperboard/paperboard/pkg/buildinfo
package pkg
