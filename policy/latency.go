package policy

import (
	"time"

	"github.com/arloliu/stdioworker/types"
)

// LatencyName is the variant name of the latency policy.
const LatencyName = "latency"

// Latency sleeps for a request-specific delay and reports the cumulative delay.
//
// The cumulative timer lives for the lifetime of the policy value, so one Latency
// must serve exactly one engine.
type Latency struct {
	opts       options
	cumulative int
}

var _ types.Policy = (*Latency)(nil)

// NewLatency creates the latency policy.
//
// For a request with parameter d (seconds) the policy adds d to its cumulative
// timer, blocks for d seconds, then writes one line "counter:cumulative:identifier".
// The sleep is never cancelled once started.
//
// Parameters:
//   - opts: Optional logger, metrics and sleeper
//
// Returns:
//   - *Latency: Initialized policy with the timer at zero
func NewLatency(opts ...Option) *Latency {
	return &Latency{opts: applyOptions(opts)}
}

// Name returns "latency".
func (l *Latency) Name() string {
	return LatencyName
}

// Cumulative returns the total simulated seconds of all requests so far.
func (l *Latency) Cumulative() int {
	return l.cumulative
}

// Respond sleeps req.Param seconds, then writes the cumulative timer.
//
// Parameters:
//   - req: Dispatched request; Param is the delay in seconds
//   - w: Destination for the data line
//
// Returns:
//   - error: Write error from w
func (l *Latency) Respond(req types.Request, w types.LineWriter) error {
	l.opts.logger.Info(formatWaitNotice(req.Param), "partition", req.Partition, "counter", req.Counter)

	l.cumulative += req.Param
	l.opts.sleep(time.Duration(req.Param) * time.Second)
	l.opts.metrics.RecordDelay(LatencyName, float64(req.Param))

	if err := w.WriteLine(types.FormatLine(req.Counter, l.cumulative, req.Partition)); err != nil {
		return err
	}

	return nil
}
