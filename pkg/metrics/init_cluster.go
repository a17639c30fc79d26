package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initClusterMetrics() {
	r.ClusterQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_cluster_queries_total",
			Help: "Total number of Cluster(mu, epsilon) queries",
		},
		[]string{"status"}, // ok, precondition_error
	)

	r.ClusterQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan_cluster_query_duration_seconds",
			Help:    "Duration of a Cluster(mu, epsilon) query",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)

	r.ClusterCoreVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_cluster_core_vertices",
			Help: "Number of core vertices found by the last Cluster query",
		},
	)

	r.ClusterBorderVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_cluster_border_vertices",
			Help: "Number of border vertices attached by the last Cluster query",
		},
	)

	r.ClusterCount = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_cluster_count",
			Help: "Number of distinct clusters produced by the last Cluster query",
		},
	)

	r.ClusterUnclustered = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_cluster_unclustered_vertices",
			Help: "Number of vertices left UNCLUSTERED by the last Cluster query",
		},
	)
}
