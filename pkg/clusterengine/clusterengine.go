// Package clusterengine runs the SCAN clustering procedure itself: core
// detection, core-to-core union over epsilon-connected edges, and border
// vertex attachment, given a built neighbor-order/core-order index pair
// and a (mu, epsilon) query.
package clusterengine

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-scan/pkg/coreorder"
	"github.com/dd0wney/cluso-scan/pkg/neighbororder"
	"github.com/dd0wney/cluso-scan/pkg/parfor"
	"github.com/dd0wney/cluso-scan/pkg/unionfind"
)

// Unclustered is the sentinel cluster id for vertices that are neither a
// core nor attached to one: noise points, or hubs that bridge clusters
// without belonging to any.
const Unclustered = int32(-1)

// Clustering is the dense v -> cluster-id mapping produced by Cluster.
// Cluster ids lie in [0, numVertices) but need not be contiguous; ids are
// stable for a single call but not guaranteed stable across calls (see
// Cluster's border-attachment non-determinism note).
type Clustering struct {
	assignments []int32
	isCore      []bool
}

// ClusterOf returns v's cluster id, or Unclustered.
func (c *Clustering) ClusterOf(v int) int32 {
	return c.assignments[v]
}

// IsCore reports whether v was a core vertex for this query.
func (c *Clustering) IsCore(v int) bool {
	return c.isCore[v]
}

// Len returns the number of vertices in the clustering.
func (c *Clustering) Len() int {
	return len(c.assignments)
}

// Cluster runs the SCAN procedure for query (mu, epsilon) against a built
// neighbor-order/core-order index pair. mu must be >= 2 and epsilon must
// lie in [0, 1]; any other input is a precondition error, returned
// immediately with no partial state retained.
//
// Algorithm: (1) compute is_core[v] for every vertex in parallel; (2) for
// every core u, union it with every core neighbor v reachable through an
// edge of similarity >= epsilon, using a lock-free union-find; (3) assign
// every core's cluster id to its disjoint-set root; (4) attach every
// non-core vertex to the first qualifying core found in its
// epsilon-prefix, in neighbor-order — which core wins when more than one
// qualifies is unspecified, a documented non-determinism in border
// assignment, not a bug.
func Cluster(no *neighbororder.Index, co *coreorder.Index, numVertices int, mu uint32, epsilon float32) (*Clustering, error) {
	if mu < 2 {
		return nil, fmt.Errorf("clusterengine: mu must be >= 2, got %d", mu)
	}
	if epsilon < 0 || epsilon > 1 || math.IsNaN(float64(epsilon)) {
		return nil, fmt.Errorf("clusterengine: epsilon must be in [0, 1], got %v", epsilon)
	}

	isCore := make([]bool, numVertices)
	if err := parfor.For(numVertices, func(v int) error {
		isCore[v] = co.IsCore(v, mu, epsilon)
		return nil
	}); err != nil {
		return nil, err
	}

	uf := unionfind.New(numVertices)
	if err := parfor.For(numVertices, func(u int) error {
		if !isCore[u] {
			return nil
		}
		for _, e := range no.Edges(u) {
			if e.Similarity < epsilon {
				break
			}
			v := int(e.Neighbor)
			if isCore[v] {
				uf.Union(u, v)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	assignments := make([]int32, numVertices)
	for v := 0; v < numVertices; v++ {
		if isCore[v] {
			assignments[v] = int32(uf.Find(v))
		} else {
			assignments[v] = Unclustered
		}
	}

	for v := 0; v < numVertices; v++ {
		if isCore[v] {
			continue
		}
		for _, e := range no.Edges(v) {
			if e.Similarity < epsilon {
				break
			}
			u := int(e.Neighbor)
			if isCore[u] {
				assignments[v] = int32(uf.Find(u))
				break
			}
		}
	}

	return &Clustering{assignments: assignments, isCore: isCore}, nil
}
