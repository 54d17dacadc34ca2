package stdioworker

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions (nil callbacks are no-ops)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &stdioworker.Hooks{
//	    OnStateChanged: func(ctx context.Context, from, to stdioworker.State) error {
//	        log.Printf("%s -> %s", from, to)
//	        return nil
//	    },
//	}
//	eng, err := stdioworker.NewEngine(&cfg, table, pol, stdioworker.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	eng, err := stdioworker.NewEngine(&cfg, table, pol,
//	    stdioworker.WithMetrics(stdioworker.NewPrometheusMetrics(reg, "")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets the diagnostic logger.
//
// Parameters:
//   - logger: Logger implementation; diagnostics are discarded when unset
//
// Returns:
//   - Option: Functional option for NewEngine
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
