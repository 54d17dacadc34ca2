package types

import "errors"

// Sentinel errors for the stdioworker module.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("%w: ...", ErrX, ...) so the
// identifier or operation that failed is visible in the message.
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Engine, Policy table, Protocol, Harness)

// Engine errors - returned by NewEngine and Engine.Run.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPolicyRequired is returned when the variant policy is nil.
	ErrPolicyRequired = errors.New("variant policy is required")

	// ErrUnknownPartition is returned when a request names an identifier that is
	// not present in the policy table. It is fatal: the engine stops serving.
	ErrUnknownPartition = errors.New("unknown partition identifier")

	// ErrAlreadyRunning is returned when Run is called on an engine that has
	// already been run. An engine serves exactly one input stream.
	ErrAlreadyRunning = errors.New("engine already running")
)

// Policy table errors - returned while building or loading a PolicyTable.
var (
	// ErrEmptyPolicyTable is returned when a policy table has no entries.
	ErrEmptyPolicyTable = errors.New("policy table is empty")

	// ErrInvalidPolicyTable is returned when a policy table entry is malformed.
	ErrInvalidPolicyTable = errors.New("invalid policy table")

	// ErrUnknownVariant is returned when a variant name has no policy or table.
	ErrUnknownVariant = errors.New("unknown variant")
)

// Protocol errors - returned by the line codec.
var (
	// ErrOutputFailed is returned when writing to the primary output channel fails.
	// There is no retry: the parent is the sole reader and the worker keeps no state
	// worth protecting.
	ErrOutputFailed = errors.New("failed to write output")

	// ErrInputFailed is returned when reading a request fails for a reason other
	// than end-of-input.
	ErrInputFailed = errors.New("failed to read input")
)

// Harness errors - returned by the parent-side test harness.
var (
	// ErrIncompleteBlock is returned when the output stream ends before the blank
	// line that terminates a response block.
	ErrIncompleteBlock = errors.New("response block not terminated")

	// ErrNotReady is returned when the worker output ends before the readiness token.
	ErrNotReady = errors.New("worker never signaled ready")
)
