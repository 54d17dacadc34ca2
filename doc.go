// Package stdioworker provides the worker side of a line-oriented child process
// protocol used to exercise parent-side subprocess orchestration.
//
// A worker announces readiness on standard output, then reads one partition
// identifier per line from standard input. For every identifier it writes a block
// of data lines followed by one blank line, flushing after each block. Diagnostics
// go to standard error only, so they never corrupt the data stream.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/stdioworker"
//	    "github.com/arloliu/stdioworker/policy"
//	    "github.com/arloliu/stdioworker/source"
//	)
//
//	table, err := source.Builtin("volume").LoadTable(ctx)
//	if err != nil { /* handle */ }
//
//	cfg := stdioworker.DefaultConfig()
//	eng, err := stdioworker.NewEngine(&cfg, table, policy.NewVolume())
//	if err != nil { /* handle */ }
//
//	if err := eng.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    os.Exit(1)
//	}
//
// # Variants
//
//   - volume: each identifier maps to a row count; the block holds that many lines
//     "counter:row:identifier"
//   - latency: each identifier maps to a delay in seconds; the worker sleeps, then
//     writes one line "counter:cumulative:identifier" where cumulative is the sum of
//     all delays so far
//
// # Lifecycle
//
// The engine moves through a small state machine:
//
//	INIT → READY ⇄ SERVING → SHUTDOWN
//	               ↘ FAILED
//
// End-of-input and the shutdown command stop the engine cleanly. An identifier
// missing from the policy table is fatal.
//
// # Testing
//
// The testing subpackage drives an engine in-process over pipes, the way a parent
// process would:
//
//	s := workertest.StartSession(t, eng)
//	lines, err := s.Run("part_a")
//
// See cmd/volume-worker and cmd/latency-worker for the ready-to-spawn binaries.
package stdioworker
