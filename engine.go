package stdioworker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/arloliu/stdioworker/internal/hooks"
	"github.com/arloliu/stdioworker/internal/logger"
	"github.com/arloliu/stdioworker/internal/metrics"
	"github.com/arloliu/stdioworker/internal/protocol"
)

// Diagnostic messages written to the error channel. They are meant for humans and
// test harnesses, not for the parent's protocol parser.
const (
	msgSentReady     = "Sent Ready"
	msgEmptyLine     = "Received Empty Line"
	msgShutdown      = "Received Shutdown"
	msgEndOfInput    = "EOFError"
	msgFinished      = "Finished all work"
	msgCanceled      = "Context canceled"
	msgFailed        = "Worker failed"
	msgHookFailed    = "Hook failed"
	msgUnknownTarget = "Unknown partition"
)

// Engine is the worker side of the line protocol.
//
// An Engine owns an immutable policy table, one variant policy and the request
// counter. It serves exactly one input stream: Run may be called once.
//
// Thread Safety:
//   - Run processes requests on the calling goroutine, one at a time
//   - State and Requests may be called concurrently with Run
type Engine struct {
	cfg     Config
	variant string
	table   PolicyTable
	policy  Policy

	logger  Logger
	metrics MetricsCollector
	hooks   Hooks

	started atomic.Bool
	state   atomic.Int32
	counter atomic.Int64
}

// NewEngine creates a worker engine.
//
// Parameters:
//   - cfg: Configuration (copied; defaults are applied to the copy)
//   - table: Immutable identifier → parameter mapping
//   - policy: Variant policy producing the data lines of each block
//   - opts: Optional logger, metrics and hooks
//
// Returns:
//   - *Engine: Engine in StateInit
//   - error: ErrInvalidConfig, ErrPolicyRequired or ErrEmptyPolicyTable
//
// Example:
//
//	cfg := stdioworker.DefaultConfig()
//	table, _ := source.Builtin("volume").LoadTable(ctx)
//	eng, err := stdioworker.NewEngine(&cfg, table, policy.NewVolume())
//	if err != nil { /* handle */ }
//	err = eng.Run(ctx, os.Stdin, os.Stdout)
func NewEngine(cfg *Config, table PolicyTable, policy Policy, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if policy == nil {
		return nil, ErrPolicyRequired
	}
	if table.Len() == 0 {
		return nil, ErrEmptyPolicyTable
	}

	c := *cfg
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.DisableShutdownCommand && table.Has(PartitionID(c.ShutdownCommand)) {
		return nil, fmt.Errorf("%w: shutdown command %q collides with a policy table identifier", ErrInvalidConfig, c.ShutdownCommand)
	}
	if c.Variant == "" {
		c.Variant = policy.Name()
	}

	options := engineOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Engine{
		cfg:     c,
		variant: c.Variant,
		table:   table,
		policy:  policy,
		logger:  options.logger,
		metrics: options.metrics,
		hooks:   hooks.Fill(options.hooks),
	}, nil
}

// Run serves the line protocol until end-of-input.
//
// Lifecycle:
//  1. Write the readiness token and flush it
//  2. Read one request line at a time; blank lines are skipped without a response
//  3. For each identifier: look it up, let the policy write the data lines, end the
//     block with one blank line, flush, increment the request counter
//  4. On end-of-input (or the shutdown command) stop and return nil
//
// A block, once started, always completes before the next read. The context is
// checked only between requests: cancellation never interrupts a block or a
// policy delay.
//
// Parameters:
//   - ctx: Context checked between requests and passed to hooks
//   - in: Request stream (normally os.Stdin)
//   - out: Response stream (normally os.Stdout)
//
// Returns:
//   - error: nil on clean shutdown; ErrUnknownPartition, ErrOutputFailed or
//     ErrInputFailed (wrapped) on a fatal error; ctx.Err() if canceled;
//     ErrAlreadyRunning on a second call
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	reader := protocol.NewReader(in)
	writer := protocol.NewWriter(out)

	if err := writer.WriteReady(e.cfg.ReadyToken); err != nil {
		return e.fail(ctx, err)
	}
	e.logger.Info(msgSentReady, "variant", e.variant)
	e.transition(ctx, StateReady)

	var stopErr error
	for {
		if err := ctx.Err(); err != nil {
			e.logger.Info(msgCanceled, "error", err)
			stopErr = err

			break
		}

		line, err := reader.ReadRequest()
		if errors.Is(err, io.EOF) {
			e.logger.Info(msgEndOfInput)
			break
		}
		if err != nil {
			return e.fail(ctx, err)
		}

		if line == "" {
			e.logger.Info(msgEmptyLine)
			e.metrics.RecordEmptyLine()

			continue
		}

		if e.isShutdownCommand(line) {
			e.logger.Info(msgShutdown)
			break
		}

		if err := e.serve(ctx, writer, PartitionID(line)); err != nil {
			return e.fail(ctx, err)
		}
	}

	e.transition(ctx, StateShutdown)
	e.logger.Info(msgFinished, "requests", e.Requests())

	return stopErr
}

// State returns the current engine state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Requests returns the number of completed response blocks.
func (e *Engine) Requests() int {
	return int(e.counter.Load())
}

// Variant returns the variant name used in diagnostics and metrics.
func (e *Engine) Variant() string {
	return e.variant
}

// serve produces one response block.
func (e *Engine) serve(ctx context.Context, writer *protocol.Writer, id PartitionID) error {
	param, ok := e.table.Lookup(id)
	if !ok {
		e.metrics.RecordUnknownPartition(id)
		e.logger.Error(msgUnknownTarget, "partition", id, "known", e.table.IDs())

		return fmt.Errorf("%w: %q", ErrUnknownPartition, id)
	}

	req := Request{Counter: e.Requests(), Partition: id, Param: param}
	e.metrics.RecordRequest(e.variant, id)
	e.transition(ctx, StateServing)

	if err := e.policy.Respond(req, writer); err != nil {
		return err
	}
	lines, err := writer.EndBlock()
	if err != nil {
		return err
	}

	e.counter.Add(1)
	e.metrics.RecordLines(e.variant, lines)
	e.transition(ctx, StateReady)

	if err := e.hooks.OnBlockWritten(ctx, req, lines); err != nil {
		e.logger.Warn(msgHookFailed, "hook", "OnBlockWritten", "error", err)
	}

	return nil
}

func (e *Engine) isShutdownCommand(line string) bool {
	return !e.cfg.DisableShutdownCommand && line == e.cfg.ShutdownCommand
}

func (e *Engine) transition(ctx context.Context, to State) {
	from := State(e.state.Swap(int32(to)))
	if from == to {
		return
	}
	e.metrics.RecordState(to)

	if err := e.hooks.OnStateChanged(ctx, from, to); err != nil {
		e.logger.Warn(msgHookFailed, "hook", "OnStateChanged", "error", err)
	}
}

func (e *Engine) fail(ctx context.Context, err error) error {
	e.logger.Error(msgFailed, "error", err, "requests", e.Requests())
	e.transition(ctx, StateFailed)

	if hookErr := e.hooks.OnError(ctx, err); hookErr != nil {
		e.logger.Warn(msgHookFailed, "hook", "OnError", "error", hookErr)
	}

	return err
}
