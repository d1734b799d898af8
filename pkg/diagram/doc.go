// Package diagram provides the model facade that external collaborators
// interact with.
//
// # Overview
//
// A [Model] composes the graph store, the command history, selection
// state, and type-metadata caches into one object. Every mutating call is
// wrapped as one or more reversible commands and routed through the
// history, so every visible change is undoable. Multi-step edits - such
// as removing an element together with its incident links - run inside a
// batch and commit as a single undo entry.
//
// Rendering, pointer capture, layout algorithms, and persistence backends
// live outside this package; they consume the model's mutation methods,
// the store's change events, and the geometry query helpers
// ([Model.LinkPolyline], [Model.FindElementAtPoint]). The model never
// measures pixels itself: hit-testing requires a caller-supplied
// [SizeProvider].
//
// # Geometry capture across gestures
//
// Interactive drags mutate the store directly frame by frame; recording
// one undo step per mouse-move would be useless. Instead callers capture
// a [GeometrySnapshot] before the gesture, and register the filtered diff
// as a single restoring command when the gesture ends - see
// [Model.CaptureGeometry] and [Model.RegisterGeometryRestore].
//
// # Concurrency
//
// A Model owns its store, history, and selection exclusively and runs on
// a single goroutine. Results of asynchronous work enter the model as
// ordinary synchronous calls; a batch must be opened and closed within
// the same synchronous turn.
package diagram
