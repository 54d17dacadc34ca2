package testing

import (
	"testing"

	"github.com/arloliu/stdioworker/internal/logger"
)

// TestLogger is a logger that writes to testing.T and records every diagnostic.
type TestLogger = logger.TestLogger

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// Messages() returns the recorded diagnostics in order.
func NewTestLogger(t testing.TB) *TestLogger {
	return logger.NewTest(t)
}
