package metrics

import (
	"sync"

	"github.com/arloliu/stdioworker/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never panics on duplicate registration until it records.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	requests          *prometheus.CounterVec
	emptyLines        prometheus.Counter
	unknownPartitions *prometheus.CounterVec
	state             prometheus.Gauge
	blockLines        *prometheus.HistogramVec
	linesTotal        *prometheus.CounterVec
	delaySeconds      *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "stdioworker" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "stdioworker"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "requests_total",
			Help:      "Total dispatched requests by variant and partition.",
		}, []string{"variant", "partition"})

		p.emptyLines = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "empty_lines_total",
			Help:      "Total blank request lines skipped without a response.",
		})

		p.unknownPartitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "unknown_partitions_total",
			Help:      "Total requests for identifiers missing from the policy table.",
		}, []string{"partition"})

		p.state = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "state",
			Help:      "Current engine state (0=init,1=ready,2=serving,3=shutdown,4=failed).",
		})

		p.blockLines = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "block_lines",
			Help:      "Data lines per response block.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 1000},
		}, []string{"variant"})

		p.linesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "lines_total",
			Help:      "Total data lines written by variant.",
		}, []string{"variant"})

		p.delaySeconds = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "policy",
			Name:      "delay_seconds_total",
			Help:      "Total simulated delay in seconds by variant.",
		}, []string{"variant"})

		p.reg.MustRegister(p.requests)
		p.reg.MustRegister(p.emptyLines)
		p.reg.MustRegister(p.unknownPartitions)
		p.reg.MustRegister(p.state)
		p.reg.MustRegister(p.blockLines)
		p.reg.MustRegister(p.linesTotal)
		p.reg.MustRegister(p.delaySeconds)
	})
}

// EngineMetrics implementation

// RecordRequest increments the request counter for variant and partition.
func (p *PrometheusCollector) RecordRequest(variant string, partition types.PartitionID) {
	p.ensureRegistered()
	p.requests.WithLabelValues(variant, string(partition)).Inc()
}

// RecordEmptyLine increments the skipped blank line counter.
func (p *PrometheusCollector) RecordEmptyLine() {
	p.ensureRegistered()
	p.emptyLines.Inc()
}

// RecordUnknownPartition increments the unknown identifier counter.
func (p *PrometheusCollector) RecordUnknownPartition(partition types.PartitionID) {
	p.ensureRegistered()
	p.unknownPartitions.WithLabelValues(string(partition)).Inc()
}

// RecordState sets the engine state gauge.
func (p *PrometheusCollector) RecordState(state types.State) {
	p.ensureRegistered()
	p.state.Set(float64(state))
}

// PolicyMetrics implementation

// RecordLines observes the block size and adds it to the line total.
func (p *PrometheusCollector) RecordLines(variant string, lines int) {
	p.ensureRegistered()
	if lines < 0 {
		lines = 0
	}
	p.blockLines.WithLabelValues(variant).Observe(float64(lines))
	p.linesTotal.WithLabelValues(variant).Add(float64(lines))
}

// RecordDelay adds a simulated delay to the per-variant total.
func (p *PrometheusCollector) RecordDelay(variant string, seconds float64) {
	p.ensureRegistered()
	if seconds < 0 {
		return
	}
	p.delaySeconds.WithLabelValues(variant).Add(seconds)
}
