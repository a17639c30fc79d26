// Package coreorder answers "for which (mu, epsilon) is vertex v a core?"
// in time proportional to the number of cores returned, rather than
// scanning every vertex on every query. It is derived once from a built
// neighbor-order index and never mutated afterward.
package coreorder

import (
	"github.com/dd0wney/cluso-scan/pkg/neighbororder"
	"github.com/dd0wney/cluso-scan/pkg/parfor"
)

// bucketEntry pairs a vertex with its (mu-1)-th best incident similarity
// (counted from 1), for sorting within a mu-bucket.
type bucketEntry struct {
	vertex     int32
	similarity float32
}

// Index is the core-order index: for each mu value that is achievable by
// at least one vertex (mu-1 <= deg(v)), a list of vertices sorted by
// S_v[mu-1] descending, so a query for (mu, epsilon) is a linear prefix
// scan that stops at the first similarity below epsilon.
type Index struct {
	no      *neighbororder.Index
	buckets map[int][]bucketEntry
	maxDeg  int
}

// Build derives a core-order index from a neighbor-order index over
// numVertices vertices. For every vertex v and every mu in
// [2, deg(v)+1], v is filed into bucket mu keyed on S_v[mu-1], the
// similarity of v's (mu-1)-th best incident edge counted from 1, which is
// edges[mu-2] in v's 0-indexed neighbor-order slice.
func Build(no *neighbororder.Index, numVertices int) *Index {
	// Every vertex can land in several mu-buckets at once, so filing them
	// shares mutable state (the map's slices) across vertices; that rules
	// out a parallel-for here without per-bucket locks that would just
	// serialize the appends anyway, so this pass stays sequential.
	buckets := make(map[int][]bucketEntry)
	maxDeg := 0

	for v := 0; v < numVertices; v++ {
		edges := no.Edges(v)
		deg := len(edges)
		if deg > maxDeg {
			maxDeg = deg
		}
		for mu := 2; mu-1 <= deg; mu++ {
			s := edges[mu-2].Similarity // (mu-1)-th best edge, counted from 1
			buckets[mu] = append(buckets[mu], bucketEntry{vertex: int32(v), similarity: s})
		}
	}

	// Once filed, each bucket's slice is exclusive to its mu, so the
	// per-bucket sorts are independent and run as a parallel-for over the
	// bucket keys.
	mus := make([]int, 0, len(buckets))
	for mu := range buckets {
		mus = append(mus, mu)
	}
	_ = parfor.For(len(mus), func(i int) error {
		b := buckets[mus[i]]
		parfor.SampleSort(b, func(a, c bucketEntry) bool {
			if a.similarity != c.similarity {
				return a.similarity > c.similarity
			}
			return a.vertex < c.vertex
		})
		return nil
	})

	return &Index{no: no, buckets: buckets, maxDeg: maxDeg}
}

// IsCore reports whether v is a core vertex at (mu, epsilon): mu >= 2,
// mu-1 <= deg(v), and v's (mu-1)-th best incident similarity >= epsilon.
func (idx *Index) IsCore(v int, mu uint32, epsilon float32) bool {
	if mu < 2 {
		return false
	}
	edges := idx.no.Edges(v)
	k := int(mu) - 1
	if k > len(edges) {
		return false
	}
	return edges[k-1].Similarity >= epsilon
}

// Cores returns every vertex that is a core at (mu, epsilon), in the
// bucket's sorted order (descending by their (mu-1)-th best similarity). The
// scan stops as soon as a similarity below epsilon is seen, since the
// bucket is sorted descending.
func (idx *Index) Cores(mu uint32, epsilon float32) []int32 {
	bucket, ok := idx.buckets[int(mu)]
	if !ok {
		return nil
	}
	out := make([]int32, 0, len(bucket))
	for _, e := range bucket {
		if e.similarity < epsilon {
			break
		}
		out = append(out, e.vertex)
	}
	return out
}

// MaxDegree returns the highest vertex degree seen while building the
// index. A query whose mu-1 exceeds it has no core vertex.
func (idx *Index) MaxDegree() int {
	return idx.maxDeg
}
