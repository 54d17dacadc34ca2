// Package policy provides the built-in variant policies of the worker engine.
//
// A policy turns one dispatched request into the data lines of a response block.
// The engine owns framing and the request counter; the policy only decides what
// lines to write and how long to take. Two policies are included:
//
//   - Volume: the table parameter is a row count; writes that many lines at once
//   - Latency: the table parameter is a delay in seconds; sleeps, then writes one
//     line carrying the cumulative delay of the process so far
//
// # Policy Selection Guide
//
// Volume:
//   - Exercises a consumer's handling of bursty, variable-size output
//   - Stateless; responses depend only on the request
//
// Latency:
//   - Exercises read timeouts and slow turnaround in the consumer
//   - Stateful; the payload depends on every earlier request of the process
//   - Sleeps on the wall clock by default; inject a SleepFunc to avoid it in tests
//
// Custom policies can be implemented by satisfying the types.Policy interface.
package policy
