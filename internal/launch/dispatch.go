package launch

import (
	"context"
	"fmt"
)

// Executor hands control to a child process. On platforms with process
// replacement a successful Launch never returns.
type Executor interface {
	Launch(inv Invocation) error
}

// HandlerFunc serves a request that does not launch a child.
type HandlerFunc func(ctx context.Context) error

// Dispatcher routes validated requests to the executor or to an in-process
// handler.
type Dispatcher struct {
	Executor Executor
	Help     HandlerFunc
	Check    HandlerFunc
}

// Dispatch performs the single action selected by req.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	switch req.Command {
	case CommandHelp:
		return d.call(ctx, d.Help, req)
	case CommandCheck:
		return d.call(ctx, d.Check, req)
	}

	inv, ok := Resolve(req)
	if !ok {
		return fmt.Errorf("no dispatch entry for %q", describe(req))
	}
	if d.Executor == nil {
		return fmt.Errorf("dispatch %q: no executor configured", describe(req))
	}
	return d.Executor.Launch(inv)
}

func (d *Dispatcher) call(ctx context.Context, fn HandlerFunc, req Request) error {
	if fn == nil {
		return fmt.Errorf("dispatch %q: no handler configured", describe(req))
	}
	return fn(ctx)
}

func describe(req Request) string {
	if req.Mode == ModeNone {
		return string(req.Command)
	}
	return string(req.Command) + " " + string(req.Mode)
}
