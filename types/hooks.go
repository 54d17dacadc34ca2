package types

import "context"

// Hooks defines callbacks for engine lifecycle events.
//
// All hooks are optional. Unlike a multi-goroutine manager, the engine has a single
// thread of control, so hooks are invoked synchronously on it: a slow hook delays
// the next read. Hook errors are logged and never change protocol output.
//
// Example:
//
//	hooks := &stdioworker.Hooks{
//	    OnBlockWritten: func(ctx context.Context, req stdioworker.Request, lines int) error {
//	        log.Printf("block %d: %d lines", req.Counter, lines)
//	        return nil
//	    },
//	}
//	eng, err := stdioworker.NewEngine(&cfg, table, pol, stdioworker.WithHooks(hooks))
type Hooks struct {
	// OnStateChanged is called on every engine state transition.
	OnStateChanged func(ctx context.Context, from, to State) error

	// OnBlockWritten is called after a response block, including its blank
	// terminator, has been flushed.
	OnBlockWritten func(ctx context.Context, req Request, lines int) error

	// OnError is called when the engine stops on a fatal error.
	OnError func(ctx context.Context, err error) error
}
