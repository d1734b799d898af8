// Package observability provides hooks for instrumenting diagram mutations
// and history operations.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about graph mutations and undo/redo
// activity.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the core
// packages free of logging or metrics dependencies and avoids import
// cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    observability.SetHistoryHooks(&myHistoryHooks{})
//	    // ... run application
//	}
package observability

import "sync"

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from graph store mutations.
type GraphHooks interface {
	// OnMutation records a single entity mutation. kind is the event kind
	// string (e.g. "element-added") and id the affected entity id.
	OnMutation(kind, id string)

	// OnReset records a full graph reset or reorder.
	OnReset(elementCount, linkCount int)
}

// =============================================================================
// History Hooks
// =============================================================================

// HistoryHooks receives events from the command history.
type HistoryHooks interface {
	// OnExecute records a command executed through the history.
	OnExecute()

	// OnUndo and OnRedo record stack traversals.
	OnUndo()
	OnRedo()

	// OnBatchStore records a committed batch and its flattened size.
	OnBatchStore(commands int)

	// OnBatchDiscard records a rolled-back batch and its size.
	OnBatchDiscard(commands int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnMutation(string, string) {}
func (NoopGraphHooks) OnReset(int, int)          {}

// NoopHistoryHooks is a no-op implementation of HistoryHooks.
type NoopHistoryHooks struct{}

func (NoopHistoryHooks) OnExecute()         {}
func (NoopHistoryHooks) OnUndo()            {}
func (NoopHistoryHooks) OnRedo()            {}
func (NoopHistoryHooks) OnBatchStore(int)   {}
func (NoopHistoryHooks) OnBatchDiscard(int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks   GraphHooks   = NoopGraphHooks{}
	historyHooks HistoryHooks = NoopHistoryHooks{}
	hooksMu      sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any mutations.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetHistoryHooks registers custom history hooks.
// This should be called once at application startup before any mutations.
func SetHistoryHooks(h HistoryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		historyHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// History returns the registered history hooks.
func History() HistoryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return historyHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	historyHooks = NoopHistoryHooks{}
}
