// Package testing provides test utilities for the stdioworker module.
//
// The package plays the parent side of the line protocol against an in-process
// engine, the way a process-pool controller drives a spawned worker: wait for the
// readiness line, write one identifier, read until the blank terminator. It
// follows Go's convention of providing testing utilities in a dedicated package
// (similar to net/http/httptest).
//
// Key utilities:
//   - StartSession: Run an engine over in-memory pipes and wait until it is ready
//   - Session.Run: Send one request and collect its response block
//   - RecordingSleeper: Latency policy sleeper that records delays instead of waiting
//   - NewTestLogger: Logger that writes to testing.T and records diagnostics
//
// Example usage:
//
//	import (
//	    "testing"
//	    workertest "github.com/arloliu/stdioworker/testing"
//	)
//
//	func TestVolume(t *testing.T) {
//	    s := workertest.StartSession(t, eng)
//	    lines, err := s.Run("part_a")
//	    require.NoError(t, err)
//	    require.Len(t, lines, 10)
//	    require.NoError(t, s.Close())
//	}
package testing
