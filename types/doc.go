// Package types provides core type definitions and interfaces for the stdioworker module.
//
// This package holds the types shared by the engine, the variant policies and the
// table sources. Keeping them here lets internal packages depend on the data model
// without importing the root stdioworker package.
//
// Key types:
//   - PartitionID: Opaque identifier a parent sends as a request
//   - PolicyTable: Immutable identifier → parameter mapping
//   - Request: A single dispatched request handed to a Policy
//   - Policy: Variant behavior that produces the data lines of a response block
//   - State: Engine lifecycle state
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
