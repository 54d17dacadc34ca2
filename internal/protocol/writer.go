package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/stdioworker/types"
)

// Writer writes the readiness token and response blocks to the parent.
type Writer struct {
	bw    *bufio.Writer
	lines int
}

var _ types.LineWriter = (*Writer)(nil)

// NewWriter creates a response writer.
//
// Parameters:
//   - w: Output stream (normally os.Stdout)
//
// Returns:
//   - *Writer: Initialized writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteReady writes the readiness token on its own line and flushes it.
//
// Parameters:
//   - token: Readiness token (e.g., "Ready")
//
// Returns:
//   - error: ErrOutputFailed wrapping the write error
func (w *Writer) WriteReady(token string) error {
	if _, err := w.bw.WriteString(token + "\n"); err != nil {
		return fmt.Errorf("%w: ready token: %w", types.ErrOutputFailed, err)
	}

	return w.flush("ready token")
}

// WriteLine buffers one data line of the current block.
//
// Parameters:
//   - line: Line content without newline
//
// Returns:
//   - error: ErrOutputFailed wrapping the write error
func (w *Writer) WriteLine(line string) error {
	if _, err := w.bw.WriteString(line); err != nil {
		return fmt.Errorf("%w: data line: %w", types.ErrOutputFailed, err)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: data line: %w", types.ErrOutputFailed, err)
	}
	w.lines++

	return nil
}

// EndBlock writes the blank terminator line and flushes the whole block.
//
// Returns:
//   - int: Number of data lines written since the previous EndBlock
//   - error: ErrOutputFailed wrapping the write error
func (w *Writer) EndBlock() (int, error) {
	lines := w.lines
	w.lines = 0

	if err := w.bw.WriteByte('\n'); err != nil {
		return lines, fmt.Errorf("%w: block terminator: %w", types.ErrOutputFailed, err)
	}

	return lines, w.flush("block terminator")
}

func (w *Writer) flush(what string) error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", types.ErrOutputFailed, what, err)
	}

	return nil
}
