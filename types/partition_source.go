package types

import "context"

// TableSource provides the policy table an engine is built with.
//
// Implementations:
//   - Static: in-memory map, for tests and embedders
//   - YAML: a YAML document listing the tables of every variant
//   - Builtin: the YAML document embedded into the binaries at build time
type TableSource interface {
	// LoadTable returns the policy table.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - PolicyTable: The immutable table
	//   - error: Load or validation error (nil on success)
	LoadTable(ctx context.Context) (PolicyTable, error)
}
