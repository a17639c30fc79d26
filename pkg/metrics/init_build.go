package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.BuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scan_index_build_duration_seconds",
			Help:    "Duration of each index build phase",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"phase"}, // similarity_kernel, neighbor_order, core_order
	)

	r.BuildVerticesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_index_vertices_total",
			Help: "Number of vertices in the last indexed graph",
		},
	)

	r.BuildEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_index_edges_total",
			Help: "Number of undirected edges in the last indexed graph",
		},
	)

	r.BuildApproxEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_index_approx_edges_total",
			Help: "Number of half-edges resolved via SimHash/MinHash instead of exact triangle counting",
		},
	)

	r.BuildHighDegreeTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_index_high_degree_vertices_total",
			Help: "Number of vertices above the approximation degree threshold",
		},
	)
}
