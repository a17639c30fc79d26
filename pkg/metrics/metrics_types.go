package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the Prometheus metrics exported by an index build and its
// cluster queries.
type Registry struct {
	// Build metrics (similarity kernel + neighbor-order + core-order)
	BuildDuration        *prometheus.HistogramVec // labels: phase
	BuildVerticesTotal    prometheus.Gauge
	BuildEdgesTotal       prometheus.Gauge
	BuildApproxEdgesTotal prometheus.Gauge // edges resolved via SimHash/MinHash
	BuildHighDegreeTotal  prometheus.Gauge

	// Cluster query metrics
	ClusterQueriesTotal   *prometheus.CounterVec // labels: status
	ClusterQueryDuration  prometheus.Histogram
	ClusterCoreVertices   prometheus.Gauge
	ClusterBorderVertices prometheus.Gauge
	ClusterCount          prometheus.Gauge
	ClusterUnclustered    prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initBuildMetrics()
	r.initClusterMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
