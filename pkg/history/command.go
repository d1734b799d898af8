package history

// Command is a reversible unit of work. Invoke performs the forward action
// and returns a new Command that, when invoked, performs the exact inverse.
//
// Commands are strictly self-dual: for any command c,
// c.Invoke().Invoke() must leave observable state unchanged and behave
// like c again. Most commands are written as closures that capture the old
// value, restore it, and return a command capturing the new value - see
// [CommandFunc].
type Command interface {
	Invoke() Command
}

// CommandFunc adapts a closure to the Command interface.
//
//	func setValue(target *int, value int) history.Command {
//	    return history.CommandFunc(func() history.Command {
//	        old := *target
//	        *target = value
//	        return setValue(target, old)
//	    })
//	}
type CommandFunc func() Command

// Invoke calls f.
func (f CommandFunc) Invoke() Command { return f() }

// sequence runs its commands in slice order and inverts as a unit.
// Its inverse is the sequence of the collected inverses in reverse order,
// which keeps the composite self-dual.
type sequence struct {
	cmds []Command
}

// Sequence composes commands into a single command that invokes them in
// order. Invoking the returned command's inverse undoes the steps in
// reverse order. An empty sequence is a valid no-op command.
func Sequence(cmds ...Command) Command {
	return sequence{cmds: cmds}
}

func (s sequence) Invoke() Command {
	inverses := make([]Command, len(s.cmds))
	for i, c := range s.cmds {
		inverses[len(s.cmds)-1-i] = c.Invoke()
	}
	return sequence{cmds: inverses}
}
