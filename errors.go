package stdioworker

import "github.com/arloliu/stdioworker/types"

// Sentinel errors returned by the Engine, re-exported from the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPolicyRequired is returned when the variant policy is nil.
	ErrPolicyRequired = types.ErrPolicyRequired

	// ErrEmptyPolicyTable is returned when the policy table has no entries.
	ErrEmptyPolicyTable = types.ErrEmptyPolicyTable

	// ErrInvalidPolicyTable is returned when a policy table entry is malformed.
	ErrInvalidPolicyTable = types.ErrInvalidPolicyTable

	// ErrUnknownPartition is returned by Run when a request names an identifier
	// missing from the policy table.
	ErrUnknownPartition = types.ErrUnknownPartition

	// ErrUnknownVariant is returned when a variant name has no policy or table.
	ErrUnknownVariant = types.ErrUnknownVariant

	// ErrAlreadyRunning is returned when Run is called twice on one engine.
	ErrAlreadyRunning = types.ErrAlreadyRunning

	// ErrOutputFailed is returned by Run when writing to the output fails.
	ErrOutputFailed = types.ErrOutputFailed

	// ErrInputFailed is returned by Run when reading a request fails.
	ErrInputFailed = types.ErrInputFailed
)
