// Package neighbororder builds and queries the per-vertex neighbor-order
// index: for each vertex, its incident edges sorted by descending
// similarity (ties broken by ascending neighbor id), which lets the core-
// order index and cluster engine read an ε-neighborhood off as a prefix
// instead of rescanning and filtering on every query.
package neighbororder

import (
	"github.com/dd0wney/cluso-scan/pkg/parfor"
	"github.com/dd0wney/cluso-scan/pkg/similarity"
)

// Entry is one (neighbor, similarity) pair in a vertex's ordered edge list.
type Entry struct {
	Neighbor   uint32
	Similarity float32
}

// Index is the built, immutable neighbor-order: offsets[v]:offsets[v+1]
// slices entries into vertex v's descending-similarity edge list.
type Index struct {
	offsets []int32
	entries []Entry
}

// Build constructs a neighbor-order index from the similarity kernel's
// directed half-edge output. edges need not arrive pre-grouped or sorted;
// Build groups them by source vertex and sorts each group.
func Build(numVertices int, edges []similarity.EdgeSimilarity) *Index {
	counts := make([]int32, numVertices)
	for _, e := range edges {
		counts[e.Source]++
	}

	offsets := make([]int32, numVertices+1)
	var total int32
	for v := 0; v < numVertices; v++ {
		offsets[v] = total
		total += counts[v]
	}
	offsets[numVertices] = total

	entries := make([]Entry, total)
	cursor := make([]int32, numVertices)
	copy(cursor, offsets[:numVertices])
	for _, e := range edges {
		pos := cursor[e.Source]
		entries[pos] = Entry{Neighbor: e.Neighbor, Similarity: e.Similarity}
		cursor[e.Source]++
	}

	// Each vertex's slice of entries is disjoint from every other's, so the
	// per-vertex sorts below have no shared mutable state and can run as a
	// parallel-for across vertices.
	_ = parfor.For(numVertices, func(v int) error {
		s := entries[offsets[v]:offsets[v+1]]
		parfor.SampleSort(s, func(a, b Entry) bool {
			if a.Similarity != b.Similarity {
				return a.Similarity > b.Similarity
			}
			return a.Neighbor < b.Neighbor
		})
		return nil
	})

	return &Index{offsets: offsets, entries: entries}
}

// Edges returns vertex v's incident edges sorted by descending similarity,
// ties broken by ascending neighbor id. The returned slice must not be
// mutated by the caller.
func (idx *Index) Edges(v int) []Entry {
	return idx.entries[idx.offsets[v]:idx.offsets[v+1]]
}

// Degree returns the number of incident edges recorded for vertex v.
func (idx *Index) Degree(v int) int {
	return int(idx.offsets[v+1] - idx.offsets[v])
}

// CountAtLeast returns the number of v's incident edges with similarity
// >= epsilon, found by binary search over the descending-sorted list.
func (idx *Index) CountAtLeast(v int, epsilon float32) int {
	edges := idx.Edges(v)
	// edges is sorted descending by similarity; find the first position
	// whose similarity drops below epsilon.
	lo, hi := 0, len(edges)
	for lo < hi {
		mid := (lo + hi) / 2
		if edges[mid].Similarity >= epsilon {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
