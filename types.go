package stdioworker

import (
	"github.com/arloliu/stdioworker/internal/metrics"
	"github.com/arloliu/stdioworker/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Re-export types from the types package.
//
// This file provides a convenient public API for the module's core types while
// internal packages depend only on `types`, avoiding an import cycle with the
// root package.
type (
	State       = types.State
	PartitionID = types.PartitionID
	PolicyTable = types.PolicyTable
	Request     = types.Request
)

// Re-export interfaces from the types package for convenience.
type (
	Policy           = types.Policy
	LineWriter       = types.LineWriter
	TableSource      = types.TableSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export State constants from the types package.
const (
	StateInit     = types.StateInit
	StateReady    = types.StateReady
	StateServing  = types.StateServing
	StateShutdown = types.StateShutdown
	StateFailed   = types.StateFailed
)

// NewPolicyTable builds an immutable policy table. See types.NewPolicyTable.
func NewPolicyTable(entries map[string]int) (PolicyTable, error) {
	return types.NewPolicyTable(entries)
}

// NewPrometheusMetrics creates a Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("stdioworker" if empty)
//
// Returns:
//   - MetricsCollector: Collector to pass to WithMetrics
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
