package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/stdioworker/types"
)

// SlogLogger implements types.Logger using Go's standard log/slog package.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements Logger.
var _ types.Logger = (*SlogLogger)(nil)

// NewSlog creates a new slog-based logger.
//
// Parameters:
//   - logger: The underlying slog.Logger instance to use
//
// Returns:
//   - *SlogLogger: A new logger instance that wraps the provided slog.Logger
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewDiagnostic creates the logger used for a worker's diagnostic channel.
//
// Records are rendered by a text handler that writes each record with a single
// unbuffered Write, so every diagnostic is visible to an observer of the error
// channel as soon as it is logged.
//
// Parameters:
//   - w: Diagnostic stream (normally os.Stderr; os.Stderr is used if nil)
//   - level: Minimum level to emit
//
// Returns:
//   - *SlogLogger: Logger writing text records to w
//
// Example:
//
//	logger := logging.NewDiagnostic(os.Stderr, slog.LevelInfo).With("variant", "volume")
//	logger.Info("Sent Ready")
func NewDiagnostic(w io.Writer, level slog.Leveler) *SlogLogger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return &SlogLogger{logger: slog.New(handler)}
}

// With returns a logger that adds the given key-value pairs to every record.
//
// Parameters:
//   - keysAndValues: Key-value pairs attached to all subsequent records
//
// Returns:
//   - *SlogLogger: Derived logger; the receiver is unchanged
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatal logs a fatal-level message with optional key-value pairs and exits.
//
// This method logs at Error level (slog doesn't have a Fatal level) and then
// calls os.Exit(1) to terminate the program.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
	os.Exit(1) //nolint:revive // Fatal should exit the program
}
