package testing

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

// errSessionClosed is reported on stdin once the engine has returned.
var errSessionClosed = errors.New("worker session closed")

// Runner is the part of the engine a Session drives.
type Runner interface {
	Run(ctx context.Context, in io.Reader, out io.Writer) error
}

// Session is the parent end of one running engine.
//
// Requests and responses flow over in-memory pipes, so every write blocks until
// the engine has read it, exactly like a pipe to a child process.
type Session struct {
	stdin  *io.PipeWriter
	stdout *bufio.Reader

	done chan struct{}
	err  error

	closeOnce sync.Once
	closeErr  error
}

// StartSession starts r on a background goroutine and waits for its readiness line.
//
// The readiness token is matched case-insensitively and any output before it is
// skipped. The session is closed automatically when the test ends.
//
// Parameters:
//   - t: Test handle; the test fails if the worker never becomes ready
//   - r: Engine to run
//
// Returns:
//   - *Session: Ready session
func StartSession(t testing.TB, r Runner) *Session {
	t.Helper()

	s := Start(context.Background(), r)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.WaitReady(), "worker did not become ready")

	return s
}

// Start runs r over in-memory pipes without waiting for readiness.
//
// Parameters:
//   - ctx: Context passed to r.Run
//   - r: Engine to run
//
// Returns:
//   - *Session: Session whose output has not been read yet
func Start(ctx context.Context, r Runner) *Session {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	s := &Session{
		stdin:  inW,
		stdout: bufio.NewReader(outR),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		s.err = r.Run(ctx, inR, outW)
		// A nil error closes stdout with io.EOF, like a clean process exit.
		_ = outW.CloseWithError(s.err)
		_ = inR.CloseWithError(errSessionClosed)
	}()

	return s
}

// WaitReady reads output until the readiness line.
//
// Returns:
//   - error: types.ErrNotReady if output ends first (joined with the engine error)
func (s *Session) WaitReady() error {
	for {
		line, err := s.stdout.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(line), "ready") {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", types.ErrNotReady, err)
		}
	}
}

// Run sends one request and reads its response block.
//
// Parameters:
//   - id: Partition identifier to request
//
// Returns:
//   - []string: Data lines of the block, without the blank terminator
//   - error: types.ErrIncompleteBlock joined with the engine error if output ended early
func (s *Session) Run(id string) ([]string, error) {
	if err := s.Send(id); err != nil {
		return nil, err
	}

	return s.ReadBlock()
}

// Send writes one raw request line without reading any output.
//
// Use it for requests that produce no block, such as blank lines.
//
// Parameters:
//   - line: Request line without newline
//
// Returns:
//   - error: Write error if the engine has stopped reading
func (s *Session) Send(line string) error {
	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		return fmt.Errorf("send %q: %w", line, err)
	}

	return nil
}

// ReadBlock reads data lines until the blank terminator.
//
// Returns:
//   - []string: Data lines read so far
//   - error: types.ErrIncompleteBlock joined with the cause if output ended early
func (s *Session) ReadBlock() ([]string, error) {
	var lines []string
	for {
		line, err := s.stdout.ReadString('\n')
		if err != nil {
			if line != "" {
				lines = append(lines, strings.TrimRight(line, "\r\n"))
			}

			return lines, fmt.Errorf("%w: %w", types.ErrIncompleteBlock, err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// Close ends the input stream, drains remaining output and waits for the engine.
//
// Close is idempotent.
//
// Returns:
//   - error: The engine's Run result
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		_ = s.stdin.Close()
		_, _ = io.Copy(io.Discard, s.stdout)
		<-s.done
		s.closeErr = s.err
	})

	return s.closeErr
}

// Done is closed when the engine's Run has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the engine's Run result once Done is closed, nil before.
func (s *Session) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}
