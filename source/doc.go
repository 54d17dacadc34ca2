// Package source provides policy table sources for the worker engine.
//
// A table source resolves the identifier → parameter mapping an engine is built
// with. The mapping is fixed for the lifetime of a process.
//
//   - Static: an in-memory map, for tests and embedders
//   - YAML: a YAML document holding the tables of several variants
//   - Builtin: the YAML document compiled into the worker binaries
//
// Builtin is the only source the worker binaries use: its document is embedded at
// build time, so no file, flag or environment variable is read at runtime.
package source
