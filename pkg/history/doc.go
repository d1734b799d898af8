// Package history provides a generic reversible-operation framework with
// undo/redo stacks and transactional batches.
//
// # Overview
//
// Every mutation of a paperboard diagram is expressed as a [Command]: a
// unit of work whose Invoke performs the forward action and returns the
// exact inverse. The [History] owns the undo and redo stacks and turns
// sequences of commands into a linear, replayable edit history.
//
// Commands are strictly self-dual: invoking the returned inverse, and then
// its own returned inverse, reproduces the original command. This property
// is what makes undo();redo() a no-op on observable state.
//
// # Batches
//
// Interactive edits are often logically multi-step - removing an element
// also removes its incident links. [History.StartBatch] opens a
// transactional scope: commands executed while the batch is open are
// buffered, and [Batch.Store] flattens them into a single undo entry while
// [Batch.Discard] rolls everything back and pushes nothing. Batches nest;
// an inner batch's Store merges its steps into the enclosing batch instead
// of creating a separate top-level entry.
//
// A batch must be opened and closed within the same synchronous turn of
// logic that initiated it. The package contains nothing graph-specific;
// the graph store's mutation methods are wrapped as commands by the
// diagram facade.
//
// # Failure semantics
//
// Invoking a command whose preconditions no longer hold - for example
// undoing commands out of the order they were produced - is a programming
// error. The history performs no reconciliation; callers must only invoke
// commands in stack order, which [History.Undo] and [History.Redo]
// guarantee by construction.
package history
