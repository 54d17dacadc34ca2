package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/stdioworker/types"
)

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	t.Helper()
	var _ types.Logger = (*SlogLogger)(nil)
}

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewDiagnostic(t *testing.T) {
	t.Run("writes text records at or above level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewDiagnostic(buf, slog.LevelInfo)

		logger.Debug("hidden")
		logger.Info("Sent Ready")

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, `msg="Sent Ready"`)
		assert.Contains(t, output, "level=INFO")
	})

	t.Run("one write per record", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewDiagnostic(buf, slog.LevelInfo)

		logger.Info("Received Empty Line")
		logger.Info("EOFError")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Received Empty Line")
		assert.Contains(t, lines[1], "EOFError")
	})

	t.Run("nil writer falls back to stderr", func(t *testing.T) {
		require.NotNil(t, NewDiagnostic(nil, slog.LevelInfo))
	})
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewDiagnostic(buf, slog.LevelDebug)
	logger := base.With("variant", "volume", "session", "abc")

	logger.Info("returning 10 rows")
	base.Info("plain")

	output := buf.String()
	assert.Contains(t, output, "variant=volume")
	assert.Contains(t, output, "session=abc")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[1], "variant=volume")
}

func TestSlogLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDiagnostic(buf, slog.LevelDebug)

	logger.Debug("debug message", "key", "value")
	logger.Warn("warning message", "state", "Serving")
	logger.Error("error message", "partition", "part_x")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "state=Serving")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, "partition=part_x")
}
