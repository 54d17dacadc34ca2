package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/stdioworker/types"
)

// Entry is one captured log record.
type Entry struct {
	Level   string
	Message string
	Fields  []any
}

// TestLogger implements types.Logger using testing.T for output and keeps every
// record so tests can assert on the diagnostic sequence.
type TestLogger struct {
	t       testing.TB
	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a new test logger that writes to t and records entries.
//
// Parameters:
//   - t: The testing.TB instance to write logs to
//
// Returns:
//   - *TestLogger: A new logger instance that uses t.Logf()
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    log := logger.NewTest(t)
//	    // run engine with stdioworker.WithLogger(log)
//	    require.Equal(t, []string{"Sent Ready", "EOFError", "Finished all work"}, log.Messages())
//	}
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.record("DEBUG", msg, keysAndValues)
}

// Info logs an info-level message with optional key-value pairs.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.record("INFO", msg, keysAndValues)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.record("WARN", msg, keysAndValues)
}

// Error logs an error-level message with optional key-value pairs.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.record("ERROR", msg, keysAndValues)
}

// Fatal logs a fatal-level message and fails the test.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
	l.t.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
}

// Messages returns the messages of all records at or above Info level, in order.
func (l *TestLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Level == "DEBUG" {
			continue
		}
		msgs = append(msgs, e.Message)
	}

	return msgs
}

// Entries returns a copy of every captured record.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg, Fields: keysAndValues})
	l.mu.Unlock()

	l.t.Logf("%s: %s %s", level, msg, formatKeyValues(keysAndValues))
}

// formatKeyValues formats key-value pairs for logging.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, "%v=%v ", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, "%v=<missing> ", keysAndValues[i])
		}
	}

	return b.String()
}
