package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setValue is the canonical closure-style command: capture the old value,
// write the new one, return the restoring command.
func setValue(target *int, value int) Command {
	return CommandFunc(func() Command {
		old := *target
		*target = value
		return setValue(target, old)
	})
}

func appendValue(target *[]int, value int) Command {
	return CommandFunc(func() Command {
		*target = append(*target, value)
		return CommandFunc(func() Command {
			*target = (*target)[:len(*target)-1]
			return appendValue(target, value)
		})
	})
}

func TestExecuteUndoRedo(t *testing.T) {
	h := New()
	v := 0

	h.Execute(setValue(&v, 1))
	h.Execute(setValue(&v, 2))
	require.Equal(t, 2, v)
	require.Equal(t, 2, h.UndoDepth())

	require.True(t, h.Undo())
	assert.Equal(t, 1, v)
	require.True(t, h.Undo())
	assert.Equal(t, 0, v)
	assert.False(t, h.Undo(), "empty undo stack should be a no-op")

	require.True(t, h.Redo())
	assert.Equal(t, 1, v)
	require.True(t, h.Redo())
	assert.Equal(t, 2, v)
	assert.False(t, h.Redo(), "empty redo stack should be a no-op")
}

func TestUndoRedoIsSelfDual(t *testing.T) {
	h := New()
	var values []int
	for i := range 5 {
		h.Execute(appendValue(&values, i))
	}
	snapshot := append([]int(nil), values...)

	// An undo/redo pair must be a no-op on observable state, repeatedly.
	for range 3 {
		require.True(t, h.Undo())
		require.True(t, h.Redo())
		assert.Equal(t, snapshot, values)
	}
}

func TestExecuteClearsRedo(t *testing.T) {
	h := New()
	v := 0
	h.Execute(setValue(&v, 1))
	h.Execute(setValue(&v, 2))
	require.True(t, h.Undo())
	require.True(t, h.CanRedo())

	h.Execute(setValue(&v, 9))
	assert.False(t, h.CanRedo(), "new edits must invalidate forward history")
	assert.Equal(t, 9, v)

	require.True(t, h.Undo())
	assert.Equal(t, 1, v)
}

func TestBatchStoreFlattensToOneEntry(t *testing.T) {
	h := New()
	var values []int

	b := h.StartBatch("bulk append")
	for i := range 4 {
		h.Execute(appendValue(&values, i))
	}
	require.Equal(t, 0, h.UndoDepth(), "batched commands must not reach the undo stack")
	b.Store()

	require.Equal(t, 1, h.UndoDepth())
	require.True(t, h.Undo())
	assert.Empty(t, values, "undoing the batch must revert every step")

	require.True(t, h.Redo())
	assert.Equal(t, []int{0, 1, 2, 3}, values, "redo must replay steps in original order")
}

func TestBatchDiscardRollsBack(t *testing.T) {
	h := New()
	v := 10
	h.Execute(setValue(&v, 20))

	b := h.StartBatch()
	h.Execute(setValue(&v, 30))
	h.Execute(setValue(&v, 40))
	b.Discard()

	assert.Equal(t, 20, v, "discard must restore the pre-batch state")
	assert.Equal(t, 1, h.UndoDepth(), "discard must push nothing")
	assert.Equal(t, 0, h.RedoDepth())
}

func TestNestedBatchMergesIntoEnclosing(t *testing.T) {
	h := New()
	var values []int

	outer := h.StartBatch("outer")
	h.Execute(appendValue(&values, 1))

	inner := h.StartBatch("inner")
	h.Execute(appendValue(&values, 2))
	h.Execute(appendValue(&values, 3))
	inner.Store()

	require.Equal(t, 0, h.UndoDepth(), "inner store must merge, not create an entry")
	h.Execute(appendValue(&values, 4))
	outer.Store()

	require.Equal(t, 1, h.UndoDepth())
	require.True(t, h.Undo())
	assert.Empty(t, values)
	require.True(t, h.Redo())
	assert.Equal(t, []int{1, 2, 3, 4}, values)
}

func TestNestedBatchDiscardRollsBackInnerOnly(t *testing.T) {
	h := New()
	var values []int

	outer := h.StartBatch()
	h.Execute(appendValue(&values, 1))

	inner := h.StartBatch()
	h.Execute(appendValue(&values, 2))
	inner.Discard()

	assert.Equal(t, []int{1}, values, "inner discard must leave outer steps applied")
	outer.Store()

	require.True(t, h.Undo())
	assert.Empty(t, values)
}

func TestEmptyBatchStoresNothing(t *testing.T) {
	h := New()
	b := h.StartBatch()
	b.Store()
	assert.Equal(t, 0, h.UndoDepth())
	assert.False(t, h.CanUndo())
}

func TestRegisterToUndo(t *testing.T) {
	h := New()
	v := 5

	// Simulates a drag gesture: the value changed outside the command
	// path, only the restoring command is registered.
	v = 42
	h.RegisterToUndo(setValue(&v, 5))

	require.True(t, h.Undo())
	assert.Equal(t, 5, v)
	require.True(t, h.Redo())
	assert.Equal(t, 42, v)
}

func TestRegisterToUndoJoinsOpenBatch(t *testing.T) {
	h := New()
	v := 0

	b := h.StartBatch()
	h.Execute(setValue(&v, 1))
	v = 7 // out-of-band change
	h.RegisterToUndo(setValue(&v, 1))
	b.Store()

	require.Equal(t, 1, h.UndoDepth())
	require.True(t, h.Undo())
	assert.Equal(t, 0, v)
	require.True(t, h.Redo())
	assert.Equal(t, 7, v)
}

func TestLimitedHistoryDropsOldest(t *testing.T) {
	h := NewLimited(2)
	v := 0
	h.Execute(setValue(&v, 1))
	h.Execute(setValue(&v, 2))
	h.Execute(setValue(&v, 3))

	require.Equal(t, 2, h.UndoDepth())
	require.True(t, h.Undo())
	require.True(t, h.Undo())
	assert.Equal(t, 1, v, "oldest entry was dropped, undo stops at the second edit")
	assert.False(t, h.CanUndo())
}

func TestBatchCloseOrder(t *testing.T) {
	h := New()
	outer := h.StartBatch()
	h.StartBatch()

	assert.Panics(t, func() { outer.Store() }, "closing batches out of order is a programming error")
}

func TestSequenceCommand(t *testing.T) {
	var values []int
	seq := Sequence(appendValue(&values, 1), appendValue(&values, 2))

	inverse := seq.Invoke()
	require.Equal(t, []int{1, 2}, values)

	redo := inverse.Invoke()
	require.Empty(t, values)

	redo.Invoke()
	assert.Equal(t, []int{1, 2}, values, "sequence must stay self-dual across cycles")
}

func TestExecuteInsideDiscardedBatchClearsRedo(t *testing.T) {
	h := New()
	v := 0

	h.Execute(setValue(&v, 1))
	require.True(t, h.Undo())
	require.True(t, h.CanRedo())

	// Executing inside a batch invalidates forward history at once; the
	// redo stack stays cleared even though the batch rolls back.
	b := h.StartBatch()
	h.Execute(setValue(&v, 5))
	b.Discard()

	assert.Equal(t, 0, v, "discard must roll the value back")
	assert.False(t, h.CanRedo(), "redo is cleared at execute time, not at batch close")
}
