package testutil

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

// readyTimeout bounds how long a freshly started worker may take to announce itself.
const readyTimeout = 10 * time.Second

var (
	// binaryCache maps a command name to its compiled binary path.
	binaryCache     = map[string]string{}
	binaryCacheLock sync.Mutex
)

// findModuleRoot finds the Go module root directory by looking for go.mod.
//
// Returns:
//   - string: Path to module root directory
//   - error: Error if go.mod not found
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

// hashSources computes a SHA256 over every non-test source file that can end up
// in a worker binary.
//
// Parameters:
//   - root: Module root
//
// Returns:
//   - string: Hex-encoded SHA256 hash
//   - error: Any error walking or reading files
func hashSources(root string) (string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "test") {
				return filepath.SkipDir
			}

			return nil
		}
		if strings.HasSuffix(name, "_test.go") {
			return nil
		}
		if strings.HasSuffix(name, ".go") || strings.HasSuffix(name, ".yaml") || name == "go.mod" || name == "go.sum" {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	slices.Sort(files)

	h := sha256.New()
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return "", err
		}
		rel, _ := filepath.Rel(root, f)
		_, _ = io.WriteString(h, rel)
		_, _ = h.Write(data)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// BuildWorker returns the path to a compiled worker binary.
//
// The binary is cached in the system temp directory under a name derived from a
// hash of the module sources, so it is rebuilt only when the code changes.
//
// Parameters:
//   - name: Command directory under cmd/, e.g. "volume-worker"
//
// Returns:
//   - string: Path to compiled binary
//   - error: Any error during compilation or cache access
func BuildWorker(name string) (string, error) {
	binaryCacheLock.Lock()
	defer binaryCacheLock.Unlock()

	if path, ok := binaryCache[name]; ok {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return "", fmt.Errorf("failed to find module root: %w", err)
	}

	sourceHash, err := hashSources(moduleRoot)
	if err != nil {
		return "", fmt.Errorf("failed to hash sources: %w", err)
	}

	cachePath := filepath.Join(os.TempDir(), fmt.Sprintf("stdioworker-%s-%s", name, sourceHash[:16]))
	if _, err := os.Stat(cachePath); err == nil {
		binaryCache[name] = cachePath
		return cachePath, nil
	}

	//nolint:noctx // Context not applicable for test utility compilation
	cmd := exec.Command("go", "build", "-o", cachePath, "./cmd/"+name)
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("compilation failed: %w\nOutput: %s", err, output)
	}

	binaryCache[name] = cachePath

	return cachePath, nil
}

// CleanupWorkerBinaryCache removes cached worker binaries.
//
// Returns:
//   - error: Any error during cleanup
func CleanupWorkerBinaryCache() error {
	binaryCacheLock.Lock()
	defer binaryCacheLock.Unlock()

	for name, path := range binaryCache {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		delete(binaryCache, name)
	}

	return nil
}

// lockedBuffer collects the diagnostic stream of a child process.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// WorkerProcess is a worker binary running as a child process.
type WorkerProcess struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
	stdin  io.WriteCloser
	stdout *bufio.Reader
	stderr *lockedBuffer

	waitOnce sync.Once
	exitCode int
	waitErr  error
}

// StartWorker builds and starts a worker binary and waits for its readiness line.
//
// The process is waited for automatically when the test ends.
//
// Parameters:
//   - t: Testing context for assertions and cleanup
//   - name: Command directory under cmd/, e.g. "latency-worker"
//
// Returns:
//   - *WorkerProcess: Ready worker
//
// Example:
//
//	w := testutil.StartWorker(t, "volume-worker")
//	lines, err := w.Run("part_a")
//	require.NoError(t, err)
//	require.Equal(t, 0, w.Wait())
func StartWorker(t *testing.T, name string) *WorkerProcess {
	t.Helper()

	binaryPath, err := BuildWorker(name)
	require.NoError(t, err, "Failed to build %s", name)

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, binaryPath)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)

	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)

	stderr := &lockedBuffer{}
	cmd.Stderr = stderr

	require.NoError(t, cmd.Start())

	w := &WorkerProcess{
		cmd:    cmd,
		cancel: cancel,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		stderr: stderr,
	}
	t.Cleanup(func() { w.Wait() })

	readyCh := make(chan error, 1)
	go func() {
		readyCh <- w.waitReady()
	}()

	select {
	case err := <-readyCh:
		require.NoError(t, err, "stderr: %s", stderr)
	case <-time.After(readyTimeout):
		cancel()
		require.Fail(t, "worker startup timeout", "stderr: %s", stderr)
	}

	return w
}

func (w *WorkerProcess) waitReady() error {
	for {
		line, err := w.stdout.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(line), "ready") {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", types.ErrNotReady, err)
		}
	}
}

// Send writes one raw request line.
func (w *WorkerProcess) Send(line string) error {
	_, err := io.WriteString(w.stdin, line+"\n")

	return err
}

// Run sends one identifier and reads its response block.
//
// Returns:
//   - []string: Data lines without the blank terminator
//   - error: types.ErrIncompleteBlock joined with the read error if output ended early
func (w *WorkerProcess) Run(id string) ([]string, error) {
	if err := w.Send(id); err != nil {
		return nil, err
	}

	return w.ReadBlock()
}

// ReadBlock reads data lines until the blank terminator.
func (w *WorkerProcess) ReadBlock() ([]string, error) {
	var lines []string
	for {
		line, err := w.stdout.ReadString('\n')
		if err != nil {
			return lines, fmt.Errorf("%w: %w", types.ErrIncompleteBlock, err)
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// Wait closes stdin, drains stdout and waits for the process to exit.
//
// Wait is idempotent.
//
// Returns:
//   - int: Process exit code, -1 if it could not be determined
func (w *WorkerProcess) Wait() int {
	w.waitOnce.Do(func() {
		_ = w.stdin.Close()
		_, _ = io.Copy(io.Discard, w.stdout)

		w.waitErr = w.cmd.Wait()
		w.cancel()

		w.exitCode = 0
		if w.waitErr != nil {
			w.exitCode = -1

			var exitErr *exec.ExitError
			if errors.As(w.waitErr, &exitErr) {
				w.exitCode = exitErr.ExitCode()
			}
		}
	})

	return w.exitCode
}

// Stderr returns the diagnostics written so far.
func (w *WorkerProcess) Stderr() string {
	return w.stderr.String()
}
