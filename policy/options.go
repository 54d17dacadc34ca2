package policy

import (
	"time"

	"github.com/arloliu/stdioworker/internal/logger"
	"github.com/arloliu/stdioworker/internal/metrics"
	"github.com/arloliu/stdioworker/types"
)

// SleepFunc suspends the caller for d. time.Sleep is the default.
type SleepFunc func(d time.Duration)

// Option configures a built-in policy.
type Option func(*options)

type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
	sleep   SleepFunc
}

func defaultOptions() options {
	return options{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		sleep:   time.Sleep,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used for per-request diagnostics.
//
// Parameters:
//   - l: Logger implementation (nil keeps the no-op logger)
//
// Returns:
//   - Option: Functional option for NewVolume, NewLatency and New
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the collector for delay metrics.
//
// Block sizes are recorded by the engine, so only the latency policy reports here.
//
// Parameters:
//   - m: MetricsCollector implementation (nil keeps the no-op collector)
//
// Returns:
//   - Option: Functional option for NewVolume, NewLatency and New
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithSleeper replaces the wall-clock sleep of the latency policy.
//
// The volume policy ignores this option.
//
// Parameters:
//   - sleep: Function called with each simulated delay (nil keeps time.Sleep)
//
// Returns:
//   - Option: Functional option for NewLatency and New
//
// Example:
//
//	var slept []time.Duration
//	pol := policy.NewLatency(policy.WithSleeper(func(d time.Duration) {
//	    slept = append(slept, d)
//	}))
func WithSleeper(sleep SleepFunc) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}
