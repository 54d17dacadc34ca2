package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/stdioworker/types"
)

// Reader reads request lines from the parent.
type Reader struct {
	br  *bufio.Reader
	eof bool
}

// NewReader creates a request reader.
//
// Lines have no length limit; a final line without a trailing newline is still
// delivered as a request.
//
// Parameters:
//   - r: Input stream (normally os.Stdin)
//
// Returns:
//   - *Reader: Initialized reader
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadRequest blocks until one line is available and returns it trimmed of
// surrounding whitespace (including "\r").
//
// Returns:
//   - string: Trimmed line; empty for a blank request
//   - error: io.EOF at end-of-input, or ErrInputFailed wrapping the read error
func (r *Reader) ReadRequest() (string, error) {
	if r.eof {
		return "", io.EOF
	}

	line, err := r.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", types.ErrInputFailed, err)
		}
		r.eof = true
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimSpace(line), nil
}
