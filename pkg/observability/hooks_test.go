package observability

import "testing"

type countingGraphHooks struct {
	mutations int
	resets    int
}

func (c *countingGraphHooks) OnMutation(kind, id string) { c.mutations++ }
func (c *countingGraphHooks) OnReset(elements, links int) {
	c.resets++
}

type countingHistoryHooks struct {
	executes, undos, redos, stores, discards int
}

func (c *countingHistoryHooks) OnExecute()          { c.executes++ }
func (c *countingHistoryHooks) OnUndo()             { c.undos++ }
func (c *countingHistoryHooks) OnRedo()             { c.redos++ }
func (c *countingHistoryHooks) OnBatchStore(int)    { c.stores++ }
func (c *countingHistoryHooks) OnBatchDiscard(int)  { c.discards++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Graph().OnMutation("element-added", "a")
	Graph().OnReset(0, 0)
	History().OnExecute()
	History().OnUndo()
	History().OnRedo()
	History().OnBatchStore(1)
	History().OnBatchDiscard(1)
}

func TestSetAndResetHooks(t *testing.T) {
	defer Reset()

	gh := &countingGraphHooks{}
	hh := &countingHistoryHooks{}
	SetGraphHooks(gh)
	SetHistoryHooks(hh)

	Graph().OnMutation("element-added", "a")
	Graph().OnReset(1, 2)
	History().OnExecute()
	History().OnUndo()

	if gh.mutations != 1 || gh.resets != 1 {
		t.Errorf("graph hooks = %d mutations, %d resets; want 1, 1", gh.mutations, gh.resets)
	}
	if hh.executes != 1 || hh.undos != 1 {
		t.Errorf("history hooks = %d executes, %d undos; want 1, 1", hh.executes, hh.undos)
	}

	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset should restore no-op graph hooks")
	}
	if _, ok := History().(NoopHistoryHooks); !ok {
		t.Error("Reset should restore no-op history hooks")
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	gh := &countingGraphHooks{}
	SetGraphHooks(gh)
	SetGraphHooks(nil)

	Graph().OnMutation("element-added", "a")
	if gh.mutations != 1 {
		t.Error("nil registration should keep the previous hooks")
	}
}
