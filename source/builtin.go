package source

import (
	_ "embed"
)

//go:embed tables.yaml
var builtinTables []byte

// Builtin returns the table source compiled into the worker binaries.
//
// Parameters:
//   - variant: "volume" or "latency"
//
// Returns:
//   - *YAML: Source over the embedded document
func Builtin(variant string) *YAML {
	return NewYAML(builtinTables, variant)
}

// BuiltinDocument returns a copy of the embedded table document.
func BuiltinDocument() []byte {
	out := make([]byte, len(builtinTables))
	copy(out, builtinTables)

	return out
}
