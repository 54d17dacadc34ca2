package types

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PartitionID is the opaque token a parent sends to request one unit of work.
//
// The set of valid identifiers is closed and fixed by the PolicyTable the engine
// is constructed with.
type PartitionID string

// String returns the identifier as a plain string.
func (p PartitionID) String() string {
	return string(p)
}

// PolicyTable maps partition identifiers to the integer parameter of a variant
// policy: a row count for the volume variant, a delay in seconds for the latency
// variant.
//
// A PolicyTable is immutable once built. The zero value is an empty table.
type PolicyTable struct {
	entries map[PartitionID]int
}

// NewPolicyTable builds an immutable policy table from a plain map.
//
// The input map is copied, so later changes to it do not affect the table.
//
// Parameters:
//   - entries: Identifier → parameter mapping
//
// Returns:
//   - PolicyTable: The immutable table
//   - error: ErrEmptyPolicyTable if entries is empty, ErrInvalidPolicyTable if an
//     identifier is empty or padded with whitespace, or a parameter is negative
//
// Example:
//
//	table, err := types.NewPolicyTable(map[string]int{"part_a": 10, "part_b": 15})
//	if err != nil { /* handle */ }
func NewPolicyTable(entries map[string]int) (PolicyTable, error) {
	if len(entries) == 0 {
		return PolicyTable{}, ErrEmptyPolicyTable
	}

	table := PolicyTable{entries: make(map[PartitionID]int, len(entries))}
	for id, param := range entries {
		if id == "" || strings.TrimSpace(id) != id {
			return PolicyTable{}, fmt.Errorf("%w: identifier %q must be non-empty without surrounding whitespace", ErrInvalidPolicyTable, id)
		}
		if param < 0 {
			return PolicyTable{}, fmt.Errorf("%w: identifier %q has negative parameter %d", ErrInvalidPolicyTable, id, param)
		}
		table.entries[PartitionID(id)] = param
	}

	return table, nil
}

// Lookup returns the parameter for an identifier.
//
// Returns:
//   - int: The parameter (0 when not found)
//   - bool: true if the identifier is in the table
func (t PolicyTable) Lookup(id PartitionID) (int, bool) {
	param, ok := t.entries[id]

	return param, ok
}

// Has reports whether the identifier is in the table.
func (t PolicyTable) Has(id PartitionID) bool {
	_, ok := t.entries[id]

	return ok
}

// Len returns the number of identifiers in the table.
func (t PolicyTable) Len() int {
	return len(t.entries)
}

// IDs returns the identifiers in ascending order.
func (t PolicyTable) IDs() []PartitionID {
	ids := make([]PartitionID, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Request is one dispatched, non-blank request line.
type Request struct {
	// Counter is the value of the engine's request counter for this block.
	// The first block of a process is tagged 0.
	Counter int

	// Partition is the trimmed identifier read from the input line.
	Partition PartitionID

	// Param is the policy table parameter for Partition.
	Param int
}

// FormatLine renders a response data line as "counter:payload:identifier".
//
// Parameters:
//   - counter: Request counter of the block
//   - payload: Row index (volume) or cumulative seconds (latency)
//   - id: Partition identifier of the request
//
// Returns:
//   - string: The formatted line without trailing newline
func FormatLine(counter int, payload int, id PartitionID) string {
	var b strings.Builder
	b.Grow(len(id) + 24)
	b.WriteString(strconv.Itoa(counter))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(payload))
	b.WriteByte(':')
	b.WriteString(string(id))

	return b.String()
}
