// Package scan is the public facade: build an Index once from a graph and
// a similarity measure, then issue repeated, concurrency-safe Cluster
// queries against it. The neighbor-order and core-order structures the
// index owns are immutable after Build returns, so multiple goroutines
// may call Cluster on the same Index without coordination.
package scan

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-scan/pkg/clusterengine"
	"github.com/dd0wney/cluso-scan/pkg/coreorder"
	"github.com/dd0wney/cluso-scan/pkg/logging"
	"github.com/dd0wney/cluso-scan/pkg/metrics"
	"github.com/dd0wney/cluso-scan/pkg/neighbororder"
	"github.com/dd0wney/cluso-scan/pkg/parfor"
	"github.com/dd0wney/cluso-scan/pkg/scangraph"
	"github.com/dd0wney/cluso-scan/pkg/similarity"
	"github.com/dd0wney/cluso-scan/pkg/validation"
)

// Index bundles the neighbor-order and core-order structures built for one
// graph and similarity measure. It is immutable after Build returns.
type Index struct {
	numVertices int
	neighbors   *neighbororder.Index
	cores       *coreorder.Index
	logger      logging.Logger
	metrics     *metrics.Registry
}

// BuildOption configures optional collaborators for Build; with no
// BuildOptions, Build uses a no-op logger and the process-wide default
// metrics registry.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger    logging.Logger
	metrics   *metrics.Registry
	phaseDone func(logging.BuildPhase)
}

// WithLogger attaches a structured logger to a build and the Index it
// produces.
func WithLogger(l logging.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// WithMetrics attaches a metrics registry to a build and the Index it
// produces, instead of the process-wide default.
func WithMetrics(r *metrics.Registry) BuildOption {
	return func(c *buildConfig) { c.metrics = r }
}

// WithPhaseHook registers a callback invoked once each build phase
// (similarity kernel, neighbor-order, core-order) finishes, so a caller
// driving a progress indicator advances it in step with the build instead
// of guessing at its timing.
func WithPhaseHook(fn func(logging.BuildPhase)) BuildOption {
	return func(c *buildConfig) { c.phaseDone = fn }
}

// Build computes the similarity kernel over graph under opts and derives
// the neighbor-order and core-order indices from it. The graph must have
// sorted, simple, undirected adjacency; opts must name a valid similarity
// measure.
func Build(graph scangraph.Graph, opts similarity.Options, buildOpts ...BuildOption) (*Index, error) {
	cfg := buildConfig{
		logger:    logging.NewNopLogger(),
		metrics:   metrics.DefaultRegistry(),
		phaseDone: func(logging.BuildPhase) {},
	}
	for _, o := range buildOpts {
		o(&cfg)
	}

	buildID := uuid.NewString()
	log := cfg.logger.With(logging.BuildID(buildID), logging.Component("scan.Build"))

	if err := validateBuildRequest(opts); err != nil {
		log.Error("precondition violation", logging.Error(err))
		return nil, newPreconditionError("Build", err)
	}

	n := graph.NumVertices()
	log.Info("similarity kernel starting", logging.Count(n), logging.String("measure", opts.Measure.String()))

	kernelTimer := logging.StartBuildPhase(log, logging.SimilarityKernelPhase)
	edges, err := similarity.AllEdgeNeighborhoodSimilarities(graph, opts)
	if err != nil {
		log.Error("similarity kernel failed", logging.Error(err))
		return nil, newPreconditionError("Build", err)
	}
	cfg.metrics.RecordBuildPhase(string(logging.SimilarityKernelPhase), kernelTimer.Elapsed())
	kernelTimer.End()
	cfg.phaseDone(logging.SimilarityKernelPhase)

	neighborTimer := logging.StartBuildPhase(log, logging.NeighborOrderPhase)
	no := neighbororder.Build(n, edges)
	cfg.metrics.RecordBuildPhase(string(logging.NeighborOrderPhase), neighborTimer.Elapsed())
	neighborTimer.End()
	cfg.phaseDone(logging.NeighborOrderPhase)

	coreTimer := logging.StartBuildPhase(log, logging.CoreOrderPhase)
	co := coreorder.Build(no, n)
	cfg.metrics.RecordBuildPhase(string(logging.CoreOrderPhase), coreTimer.Elapsed())
	coreTimer.End()
	cfg.phaseDone(logging.CoreOrderPhase)

	var highDegree, approxEdges int64
	threshold := 4 * opts.NumSamples
	if opts.Measure == similarity.ApproxCosine || opts.Measure == similarity.ApproxJaccard {
		highDegree = parfor.ReduceInt64(n, func(v int) int64 {
			if graph.OutDegree(v) >= threshold {
				return 1
			}
			return 0
		})
		// Half-edges with both endpoints high-degree carry a sketch estimate.
		approxEdges = parfor.ReduceInt64(n, func(v int) int64 {
			if graph.OutDegree(v) < threshold {
				return 0
			}
			var count int64
			graph.MapOutNeighbors(v, func(_, neighbor, _ int) {
				if graph.OutDegree(neighbor) >= threshold {
					count++
				}
			})
			return count
		})
	}
	cfg.metrics.RecordBuildStats(n, graph.NumEdges(), int(approxEdges), int(highDegree))

	log.Info("index build complete", logging.Count(n))

	return &Index{
		numVertices: n,
		neighbors:   no,
		cores:       co,
		logger:      log,
		metrics:     cfg.metrics,
	}, nil
}

// Cluster runs the SCAN clustering procedure for (mu, epsilon) against the
// index. Safe to call concurrently from multiple goroutines on the same
// Index.
func (idx *Index) Cluster(mu uint32, epsilon float32) (*clusterengine.Clustering, error) {
	start := time.Now()

	if err := validateClusterRequest(mu, epsilon); err != nil {
		idx.metrics.RecordClusterQuery("precondition_error", time.Since(start), 0, 0, 0, 0)
		return nil, newPreconditionError("Cluster", err)
	}

	c, err := clusterengine.Cluster(idx.neighbors, idx.cores, idx.numVertices, mu, epsilon)
	if err != nil {
		idx.metrics.RecordClusterQuery("precondition_error", time.Since(start), 0, 0, 0, 0)
		return nil, newPreconditionError("Cluster", err)
	}

	core, border, clusters, unclustered := summarize(c)
	idx.metrics.RecordClusterQuery("ok", time.Since(start), core, border, clusters, unclustered)
	idx.logger.Debug("cluster query complete",
		logging.Int("mu", int(mu)),
		logging.Similarity(epsilon),
		logging.Count(clusters))

	return c, nil
}

func summarize(c *clusterengine.Clustering) (core, border, clusters, unclustered int) {
	roots := make(map[int32]bool)
	for v := 0; v < c.Len(); v++ {
		switch {
		case c.IsCore(v):
			core++
			roots[c.ClusterOf(v)] = true
		case c.ClusterOf(v) == clusterengine.Unclustered:
			unclustered++
		default:
			border++
		}
	}
	return core, border, len(roots), unclustered
}

func validateBuildRequest(opts similarity.Options) error {
	req := &validation.BuildRequest{
		Similarity:  opts.Measure.String(),
		NumSamples:  opts.NumSamples,
		RandomSeed:  opts.Seed,
		WorkerCount: 0,
	}
	return validation.ValidateBuildRequest(req)
}

func validateClusterRequest(mu uint32, epsilon float32) error {
	req := &validation.ClusterRequest{Mu: mu, Epsilon: float64(epsilon)}
	return validation.ValidateClusterRequest(req)
}
