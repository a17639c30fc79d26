package metrics

import "time"

// RecordBuildPhase records the wall-clock duration of one index build phase.
func (r *Registry) RecordBuildPhase(phase string, duration time.Duration) {
	r.BuildDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordBuildStats records the static shape of the freshly built index.
func (r *Registry) RecordBuildStats(vertices, edges, approxEdges, highDegree int) {
	r.BuildVerticesTotal.Set(float64(vertices))
	r.BuildEdgesTotal.Set(float64(edges))
	r.BuildApproxEdgesTotal.Set(float64(approxEdges))
	r.BuildHighDegreeTotal.Set(float64(highDegree))
}

// RecordClusterQuery records one Cluster(mu, epsilon) call.
func (r *Registry) RecordClusterQuery(status string, duration time.Duration, core, border, clusters, unclustered int) {
	r.ClusterQueriesTotal.WithLabelValues(status).Inc()
	if status != "ok" {
		return
	}
	r.ClusterQueryDuration.Observe(duration.Seconds())
	r.ClusterCoreVertices.Set(float64(core))
	r.ClusterBorderVertices.Set(float64(border))
	r.ClusterCount.Set(float64(clusters))
	r.ClusterUnclustered.Set(float64(unclustered))
}
