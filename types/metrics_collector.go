package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine calls every method from its single goroutine; collectors shared by
// several engines in one process must still be thread-safe.
//
// This interface composes smaller, domain-focused interfaces.
type MetricsCollector interface {
	EngineMetrics
	PolicyMetrics
}

// EngineMetrics defines metrics for the request loop.
type EngineMetrics interface {
	// RecordRequest records one dispatched request.
	//
	// Parameters:
	//   - variant: Policy name ("volume", "latency")
	//   - partition: Requested identifier
	RecordRequest(variant string, partition PartitionID)

	// RecordEmptyLine records a blank request line that was skipped.
	RecordEmptyLine()

	// RecordUnknownPartition records a request for an identifier missing from the table.
	RecordUnknownPartition(partition PartitionID)

	// RecordState sets the current engine state (gauge metric).
	RecordState(state State)
}

// PolicyMetrics defines metrics for response generation.
type PolicyMetrics interface {
	// RecordLines records the number of data lines in one response block.
	//
	// Parameters:
	//   - variant: Policy name
	//   - lines: Data lines written (excluding the blank terminator)
	RecordLines(variant string, lines int)

	// RecordDelay records a simulated delay.
	//
	// Parameters:
	//   - variant: Policy name
	//   - seconds: Delay in seconds
	RecordDelay(variant string, seconds float64)
}
