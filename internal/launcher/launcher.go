// Package launcher wires the worker binaries: diagnostic logger, built-in policy
// table, variant policy and engine.
package launcher

import (
	"context"
	"io"
	"log/slog"

	"github.com/arloliu/stdioworker"
	"github.com/arloliu/stdioworker/internal/logging"
	"github.com/arloliu/stdioworker/policy"
	"github.com/arloliu/stdioworker/source"
	"github.com/google/uuid"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Run serves one worker process and returns its exit code.
//
// Every diagnostic record carries a per-process session id and the variant name.
// The data stream on stdout carries only the protocol.
//
// Parameters:
//   - ctx: Context checked between requests
//   - variant: "volume" or "latency"
//   - stdin: Request stream
//   - stdout: Response stream
//   - stderr: Diagnostic stream
//
// Returns:
//   - int: ExitOK on end-of-input or shutdown command, ExitFailure on any error
func Run(ctx context.Context, variant string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logging.NewDiagnostic(stderr, slog.LevelInfo).
		With("session", uuid.NewString(), "variant", variant)

	eng, err := build(ctx, variant, log)
	if err != nil {
		log.Error("Worker setup failed", "error", err)
		return ExitFailure
	}

	if err := eng.Run(ctx, stdin, stdout); err != nil {
		return ExitFailure
	}

	return ExitOK
}

func build(ctx context.Context, variant string, log *logging.SlogLogger) (*stdioworker.Engine, error) {
	table, err := source.Builtin(variant).LoadTable(ctx)
	if err != nil {
		return nil, err
	}

	pol, err := policy.New(variant, policy.WithLogger(log))
	if err != nil {
		return nil, err
	}

	cfg := stdioworker.DefaultConfig()
	cfg.Variant = variant

	return stdioworker.NewEngine(&cfg, table, pol, stdioworker.WithLogger(log))
}
