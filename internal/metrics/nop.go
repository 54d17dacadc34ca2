package metrics

import "github.com/arloliu/stdioworker/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. This is the engine default.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// EngineMetrics implementation

// RecordRequest discards the request metric.
func (n *NopMetrics) RecordRequest(_ /* variant */ string, _ /* partition */ types.PartitionID) {
	// No-op
}

// RecordEmptyLine discards the empty line metric.
func (n *NopMetrics) RecordEmptyLine() {
	// No-op
}

// RecordUnknownPartition discards the unknown partition metric.
func (n *NopMetrics) RecordUnknownPartition(_ /* partition */ types.PartitionID) {
	// No-op
}

// RecordState discards the state metric.
func (n *NopMetrics) RecordState(_ /* state */ types.State) {
	// No-op
}

// PolicyMetrics implementation

// RecordLines discards the block size metric.
func (n *NopMetrics) RecordLines(_ /* variant */ string, _ /* lines */ int) {
	// No-op
}

// RecordDelay discards the delay metric.
func (n *NopMetrics) RecordDelay(_ /* variant */ string, _ /* seconds */ float64) {
	// No-op
}
