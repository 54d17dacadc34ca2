package source

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/arloliu/stdioworker/types"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout of a policy table file.
//
// Example:
//
//	variants:
//	  volume:
//	    unit: rows
//	    partitions:
//	      part_a: 10
//	  latency:
//	    unit: seconds
//	    partitions:
//	      part_a: 10
type Document struct {
	Variants map[string]VariantTable `yaml:"variants"`
}

// VariantTable is the table of one variant.
type VariantTable struct {
	// Unit documents what the parameter means ("rows", "seconds").
	Unit string `yaml:"unit"`

	// Partitions maps identifiers to the parameter.
	Partitions map[string]int `yaml:"partitions"`
}

// YAML implements a table source that selects one variant from a YAML document.
type YAML struct {
	data    []byte
	variant string
}

var _ types.TableSource = (*YAML)(nil)

// NewYAML creates a table source over a YAML document.
//
// Parameters:
//   - data: YAML document in the Document layout
//   - variant: Variant whose table LoadTable returns
//
// Returns:
//   - *YAML: Initialized source (the document is parsed on LoadTable)
func NewYAML(data []byte, variant string) *YAML {
	return &YAML{data: data, variant: variant}
}

// ParseDocument decodes a policy table document.
//
// Unknown fields are rejected so a typo in a table key cannot silently drop a variant.
//
// Parameters:
//   - data: YAML bytes
//
// Returns:
//   - *Document: Decoded document
//   - error: types.ErrInvalidPolicyTable wrapping the decode error
func ParseDocument(data []byte) (*Document, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", types.ErrInvalidPolicyTable, err)
	}

	return &doc, nil
}

// VariantNames returns the variant names defined in the document, sorted.
func (d *Document) VariantNames() []string {
	names := make([]string, 0, len(d.Variants))
	for name := range d.Variants {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// LoadTable parses the document and returns the selected variant's table.
//
// Returns:
//   - types.PolicyTable: The table
//   - error: types.ErrInvalidPolicyTable for a malformed document,
//     types.ErrUnknownVariant if the variant is missing, or a table validation error
func (y *YAML) LoadTable(ctx context.Context) (types.PolicyTable, error) {
	if err := ctx.Err(); err != nil {
		return types.PolicyTable{}, err
	}

	doc, err := ParseDocument(y.data)
	if err != nil {
		return types.PolicyTable{}, err
	}

	vt, ok := doc.Variants[y.variant]
	if !ok {
		return types.PolicyTable{}, fmt.Errorf("%w: %q not in table document (have %v)", types.ErrUnknownVariant, y.variant, doc.VariantNames())
	}

	table, err := types.NewPolicyTable(vt.Partitions)
	if err != nil {
		return types.PolicyTable{}, fmt.Errorf("variant %q: %w", y.variant, err)
	}

	return table, nil
}
