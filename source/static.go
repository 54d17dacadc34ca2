package source

import (
	"context"
	"maps"

	"github.com/arloliu/stdioworker/types"
)

// Static implements a table source over a fixed in-memory map.
type Static struct {
	entries map[string]int
}

var _ types.TableSource = (*Static)(nil)

// NewStatic creates a new static table source.
//
// The map is copied; validation happens in LoadTable.
//
// Parameters:
//   - entries: Identifier → parameter mapping
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(map[string]int{"part_a": 10, "part_b": 15})
//	table, err := src.LoadTable(ctx)
func NewStatic(entries map[string]int) *Static {
	return &Static{entries: maps.Clone(entries)}
}

// LoadTable returns the static mapping as an immutable policy table.
//
// Returns:
//   - types.PolicyTable: The table
//   - error: Validation error from types.NewPolicyTable
func (s *Static) LoadTable(_ context.Context) (types.PolicyTable, error) {
	return types.NewPolicyTable(s.entries)
}
