package history

import (
	"github.com/paperboard/paperboard/pkg/observability"
)

// History maintains the undo and redo stacks for a single diagram model.
//
// The zero value is not usable - use [New]. History is owned by one model
// instance and is not safe for concurrent use; all state transitions are
// synchronous function calls on the owning goroutine.
type History struct {
	undo    []Command
	redo    []Command
	batches []*Batch
	limit   int
}

// New creates an empty history with an unbounded undo stack.
func New() *History {
	return &History{}
}

// NewLimited creates an empty history that keeps at most limit undo
// entries, dropping the oldest entries when the limit is exceeded.
// A limit of zero or below means unbounded.
func NewLimited(limit int) *History {
	return &History{limit: limit}
}

// Execute invokes the command and records its inverse so the edit can be
// undone. New edits invalidate forward history, so the redo stack is
// cleared immediately, even when the enclosing batch is later discarded.
// While a batch is open the inverse is buffered into the batch instead of
// becoming its own undo entry.
func (h *History) Execute(cmd Command) {
	inverse := cmd.Invoke()
	h.redo = nil
	observability.History().OnExecute()

	if b := h.currentBatch(); b != nil {
		b.inverses = append(b.inverses, inverse)
		return
	}
	h.pushUndo(inverse)
}

// RegisterToUndo appends an already-computed inverse command without
// invoking it. This is used when state changed outside the command
// execution path - for example geometry captured across a drag gesture -
// and only the restoring command is known. While a batch is open the
// command joins the batch; otherwise it becomes a single undo entry.
func (h *History) RegisterToUndo(cmd Command) {
	h.redo = nil
	if b := h.currentBatch(); b != nil {
		b.inverses = append(b.inverses, cmd)
		return
	}
	h.pushUndo(cmd)
}

// Undo pops the most recent undo entry, invokes it, and pushes the result
// onto the redo stack. It reports whether an entry was undone; calling
// Undo with an empty stack is a no-op. Undo must not be called while a
// batch is open.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd.Invoke())
	observability.History().OnUndo()
	return true
}

// Redo pops the most recent redo entry, invokes it, and pushes the result
// back onto the undo stack. It reports whether an entry was redone.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd.Invoke())
	observability.History().OnRedo()
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undo entries.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redo entries.
func (h *History) RedoDepth() int { return len(h.redo) }

// Clear drops both stacks. Open batches are unaffected; callers should
// close batches before clearing.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// StartBatch opens a transactional scope. Commands executed while the
// batch is open are buffered and become a single undo entry when the batch
// is stored, or are rolled back entirely when it is discarded. Batches may
// be nested; storing an inner batch merges its steps into the enclosing
// batch. The optional label describes the logical edit (e.g. "move
// selection") for debugging and inspection tooling.
func (h *History) StartBatch(label ...string) *Batch {
	b := &Batch{history: h}
	if len(label) > 0 {
		b.label = label[0]
	}
	h.batches = append(h.batches, b)
	return b
}

// BatchDepth returns the number of currently open batches.
func (h *History) BatchDepth() int { return len(h.batches) }

func (h *History) currentBatch() *Batch {
	if len(h.batches) == 0 {
		return nil
	}
	return h.batches[len(h.batches)-1]
}

func (h *History) pushUndo(cmd Command) {
	h.undo = append(h.undo, cmd)
	if h.limit > 0 && len(h.undo) > h.limit {
		// Drop the oldest entry; copy so the backing array does not pin it.
		h.undo = append(h.undo[:0:0], h.undo[1:]...)
	}
}

// Batch is a transactional scope produced by [History.StartBatch].
// Exactly one of Store or Discard must be called, within the same
// synchronous turn that opened the batch.
type Batch struct {
	history  *History
	label    string
	inverses []Command
	closed   bool
}

// Label returns the descriptive label passed to StartBatch, if any.
func (b *Batch) Label() string { return b.label }

// Len returns the number of buffered steps.
func (b *Batch) Len() int { return len(b.inverses) }

// Store commits the batch. For a nested batch the buffered steps merge
// into the enclosing batch; for the outermost batch they flatten into
// exactly one undo entry whose invocation undoes all steps in reverse
// order. An empty batch stores nothing.
func (b *Batch) Store() {
	h := b.pop()
	observability.History().OnBatchStore(len(b.inverses))

	if parent := h.currentBatch(); parent != nil {
		parent.inverses = append(parent.inverses, b.inverses...)
		return
	}
	if len(b.inverses) == 0 {
		return
	}
	// The buffered commands are inverses in execution order; undoing must
	// run them newest-first.
	reversed := make([]Command, len(b.inverses))
	for i, c := range b.inverses {
		reversed[len(b.inverses)-1-i] = c
	}
	h.pushUndo(Sequence(reversed...))
}

// Discard rolls the batch back: every buffered inverse is invoked
// immediately in reverse order, restoring the pre-batch state, and nothing
// is pushed onto either stack.
func (b *Batch) Discard() {
	b.pop()
	observability.History().OnBatchDiscard(len(b.inverses))

	for i := len(b.inverses) - 1; i >= 0; i-- {
		b.inverses[i].Invoke()
	}
	b.inverses = nil
}

func (b *Batch) pop() *History {
	h := b.history
	if b.closed {
		panic("history: batch closed twice")
	}
	if h.currentBatch() != b {
		panic("history: batches must close in the order they were opened")
	}
	b.closed = true
	h.batches = h.batches[:len(h.batches)-1]
	return h
}
