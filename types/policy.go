package types

// LineWriter receives the data lines of one response block.
//
// Lines are written without a trailing newline. The engine owns block framing:
// a Policy never writes the terminating blank line itself.
type LineWriter interface {
	// WriteLine writes one data line.
	//
	// Parameters:
	//   - line: Line content without newline
	//
	// Returns:
	//   - error: Non-nil if the output channel failed (fatal)
	WriteLine(line string) error
}

// Policy is the variant behavior injected into the engine.
//
// Given a dispatched request it produces the data lines of the response block.
// Implementations may keep state across requests (the latency variant keeps a
// cumulative timer); the engine calls Respond from a single goroutine, one
// request at a time, so implementations need no locking.
type Policy interface {
	// Name returns the variant name (e.g., "volume", "latency").
	Name() string

	// Respond writes the data lines for one request.
	//
	// Parameters:
	//   - req: The dispatched request, including its table parameter
	//   - w: Destination for the data lines
	//
	// Returns:
	//   - error: Write error from w (fatal to the engine)
	Respond(req Request, w LineWriter) error
}
