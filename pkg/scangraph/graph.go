// Package scangraph provides the read-only graph contract the similarity
// kernel, neighbor-order index, and cluster engine are built against, plus
// a compressed-sparse-row implementation of it. Graph loading, codecs, and
// memory-mapped input are out of scope here; Graph is the minimal surface
// those collaborators would need to satisfy to plug in upstream of this
// package.
package scangraph

import (
	"fmt"

	"github.com/dd0wney/cluso-scan/pkg/parfor"
)

// Graph is the read-only contract the index builder needs: vertex and edge
// counts, per-vertex out-degree, and an ascending-order neighbor walk.
// Adjacency lists must be sorted ascending by neighbor id; Graph
// implementations are not required to validate this themselves, but
// Validate below does, for use at index-build time.
type Graph interface {
	// NumVertices is |V|.
	NumVertices() int
	// NumEdges is |E|, counting each undirected edge once.
	NumEdges() int
	// OutDegree returns deg(v) for vertex v.
	OutDegree(v int) int
	// MapOutNeighbors invokes fn(v, neighbor, indexInV) for every neighbor
	// of v in ascending neighbor-id order, where indexInV is the neighbor's
	// 0-based position within v's own adjacency list.
	MapOutNeighbors(v int, fn func(v, neighbor, indexInV int))
}

// CSRGraph is a flat compressed-sparse-row adjacency representation: two
// arrays, offsets[|V|+1] and edges[2|E|], so that vertex v's neighbors are
// edges[offsets[v]:offsets[v+1]]. This avoids the heap cycles a
// pointer-linked adjacency list would have between vertices and their own
// incident-edge records.
type CSRGraph struct {
	offsets []int32
	edges   []int32
}

var _ Graph = (*CSRGraph)(nil)

// NewCSRGraph builds a CSRGraph from an undirected edge list. Each pair
// {u, v} is expanded into both directed half-edges; adjacency lists are
// sorted ascending and deduplicated.
func NewCSRGraph(numVertices int, undirectedEdges [][2]int) (*CSRGraph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("scangraph: numVertices must be >= 0, got %d", numVertices)
	}

	adj := make([][]int32, numVertices)
	for _, e := range undirectedEdges {
		u, v := e[0], e[1]
		if u < 0 || u >= numVertices || v < 0 || v >= numVertices {
			return nil, fmt.Errorf("scangraph: edge (%d, %d) out of range for %d vertices", u, v, numVertices)
		}
		if u == v {
			return nil, fmt.Errorf("scangraph: self-loop at vertex %d not allowed", u)
		}
		adj[u] = append(adj[u], int32(v))
		adj[v] = append(adj[v], int32(u))
	}

	// Each vertex's adjacency list is sorted and deduplicated independently
	// of every other's, so this pass is a parallel-for over vertices.
	_ = parfor.For(numVertices, func(v int) error {
		parfor.SampleSortOrdered(adj[v])
		adj[v] = dedupSorted(adj[v])
		return nil
	})

	offsets := make([]int32, numVertices+1)
	var total int32
	for v := 0; v < numVertices; v++ {
		offsets[v] = total
		total += int32(len(adj[v]))
	}
	offsets[numVertices] = total

	edges := make([]int32, 0, total)
	for v := 0; v < numVertices; v++ {
		edges = append(edges, adj[v]...)
	}

	return &CSRGraph{offsets: offsets, edges: edges}, nil
}

func dedupSorted(s []int32) []int32 {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// NumVertices is |V|.
func (g *CSRGraph) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges is |E|, the number of undirected edges (half of the directed
// half-edge count stored in edges).
func (g *CSRGraph) NumEdges() int {
	return len(g.edges) / 2
}

// OutDegree returns deg(v).
func (g *CSRGraph) OutDegree(v int) int {
	return int(g.offsets[v+1] - g.offsets[v])
}

// MapOutNeighbors walks v's adjacency list ascending, reporting each
// neighbor's 0-based position within that list.
func (g *CSRGraph) MapOutNeighbors(v int, fn func(v, neighbor, indexInV int)) {
	start, end := g.offsets[v], g.offsets[v+1]
	for i := start; i < end; i++ {
		fn(v, int(g.edges[i]), int(i-start))
	}
}

// Neighbors returns a copy of v's sorted adjacency list. Intended for tests
// and small diagnostics, not hot paths.
func (g *CSRGraph) Neighbors(v int) []int32 {
	start, end := g.offsets[v], g.offsets[v+1]
	out := make([]int32, end-start)
	copy(out, g.edges[start:end])
	return out
}

// Validate checks the structural preconditions the index builder assumes:
// adjacency sorted ascending with no duplicates or self-loops.
func Validate(g Graph) error {
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		last := -1
		var validateErr error
		g.MapOutNeighbors(v, func(src, neighbor, idx int) {
			if validateErr != nil {
				return
			}
			if neighbor == src {
				validateErr = fmt.Errorf("scangraph: vertex %d has a self-loop", src)
				return
			}
			if neighbor <= last {
				validateErr = fmt.Errorf("scangraph: vertex %d adjacency not strictly ascending at neighbor %d", src, neighbor)
				return
			}
			last = neighbor
		})
		if validateErr != nil {
			return validateErr
		}
	}
	return nil
}
