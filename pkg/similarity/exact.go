package similarity

import (
	"math"
	"sync/atomic"

	"github.com/dd0wney/cluso-scan/pkg/parfor"
	"github.com/dd0wney/cluso-scan/pkg/scangraph"
)

// orientedGraph is G' from the spec: every undirected edge of the source
// graph, directed from its lower-degree endpoint to its higher-degree one
// (ties broken by vertex id). Its out-degree per vertex is at most
// sqrt(2|E|), which is what keeps the triangle-counting intersections
// cheap. It is stored CSR-style so adjacency subsequences stay sorted.
type orientedGraph struct {
	offsets []int32
	edges   []int32
}

func orientFrom(u, v int, degree []int32) int {
	if degree[u] != degree[v] {
		if degree[u] < degree[v] {
			return u
		}
		return v
	}
	if u < v {
		return u
	}
	return v
}

func buildOrientedGraph(g scangraph.Graph) *orientedGraph {
	n := g.NumVertices()
	degree := make([]int32, n)
	for v := 0; v < n; v++ {
		degree[v] = int32(g.OutDegree(v))
	}

	outCount := make([]int64, n)
	for v := 0; v < n; v++ {
		g.MapOutNeighbors(v, func(src, neighbor, idx int) {
			if orientFrom(src, neighbor, degree) == src {
				outCount[src]++
			}
		})
	}

	prefix := parfor.PrefixSum(outCount)
	offsets := make([]int32, len(prefix))
	for i, v := range prefix {
		offsets[i] = int32(v)
	}

	edges := make([]int32, offsets[n])
	cursor := make([]int32, n)
	copy(cursor, offsets[:n])
	for v := 0; v < n; v++ {
		g.MapOutNeighbors(v, func(src, neighbor, idx int) {
			if orientFrom(src, neighbor, degree) == src {
				edges[cursor[src]] = int32(neighbor)
				cursor[src]++
			}
		})
	}

	return &orientedGraph{offsets: offsets, edges: edges}
}

func (og *orientedGraph) neighbors(v int) []int32 {
	return og.edges[og.offsets[v]:og.offsets[v+1]]
}

// countTriangles runs the forward triangle-counting algorithm over the
// oriented graph: for every directed edge (u,v), intersect u and v's
// out-neighbor lists; every common element w closes a triangle {u,v,w}
// and bumps the shared-neighbor counters of all three of its edges. Each
// triangle is discovered exactly once, by construction of the degree
// orientation, so every counter ends up holding the true number of common
// neighbors of its edge's two endpoints in the original undirected graph.
func countTriangles(og *orientedGraph) []int32 {
	counters := make([]int32, len(og.edges))

	parfor.For(len(og.offsets)-1, func(u int) error {
		uNeighbors := og.neighbors(u)
		for idxV, v := range uNeighbors {
			vNeighbors := og.neighbors(int(v))
			intersectWithIndex(uNeighbors, vNeighbors, func(w int32, posU, posV int) {
				atomic.AddInt32(&counters[int(og.offsets[u])+idxV], 1)
				atomic.AddInt32(&counters[int(og.offsets[u])+posU], 1)
				atomic.AddInt32(&counters[int(og.offsets[v])+posV], 1)
			})
		}
		return nil
	})

	return counters
}

// distributeShared takes the oriented-edge counters and produces a shared-
// neighbor count for every directed half-edge of the original graph, so
// that both (u,v) and (v,u) see the same value regardless of which
// direction the orientation picked.
func distributeShared(g scangraph.Graph, og *orientedGraph, counters []int32) []int32 {
	n := g.NumVertices()
	offsets := make([]int32, n+1)
	g2edges := make([]int32, 0)
	for v := 0; v < n; v++ {
		offsets[v] = int32(len(g2edges))
		g.MapOutNeighbors(v, func(src, neighbor, idx int) {
			g2edges = append(g2edges, int32(neighbor))
		})
	}
	offsets[n] = int32(len(g2edges))

	shared := make([]int32, len(g2edges))

	for u := 0; u < n; u++ {
		uOriented := og.neighbors(u)
		for idxV, v := range uOriented {
			c := counters[int(og.offsets[u])+idxV]
			shared[positionOf(offsets, g2edges, u, int(v))] = c
			shared[positionOf(offsets, g2edges, int(v), u)] = c
		}
	}

	return shared
}

// positionOf binary-searches x's sorted adjacency list for neighbor y and
// returns its absolute index into edges.
func positionOf(offsets []int32, edges []int32, x, y int) int {
	lo, hi := int(offsets[x]), int(offsets[x+1])
	for lo < hi {
		mid := (lo + hi) / 2
		if edges[mid] < int32(y) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// cosineFormula is f(deg(u), deg(v), shared) for exact cosine similarity.
func cosineFormula(degU, degV, shared int32) float32 {
	num := float64(shared) + 2
	den := math.Sqrt(float64(degU)+1) * math.Sqrt(float64(degV)+1)
	return float32(num / den)
}

// jaccardFormula is f(deg(u), deg(v), shared) for exact Jaccard similarity.
func jaccardFormula(degU, degV, shared int32) float32 {
	num := float64(shared) + 2
	den := float64(degU) + float64(degV) - float64(shared)
	return float32(num / den)
}

// exactSimilarities computes the full exact EdgeSimilarity sequence for
// every directed half-edge, using cosineFormula or jaccardFormula
// depending on measure.
func exactSimilarities(g scangraph.Graph, measure Measure) []EdgeSimilarity {
	n := g.NumVertices()
	degree := make([]int32, n)
	for v := 0; v < n; v++ {
		degree[v] = int32(g.OutDegree(v))
	}

	og := buildOrientedGraph(g)
	counters := countTriangles(og)
	shared := distributeShared(g, og, counters)

	out := make([]EdgeSimilarity, 0, len(shared))
	pos := 0
	for u := 0; u < n; u++ {
		g.MapOutNeighbors(u, func(src, neighbor, idx int) {
			s := shared[pos]
			var f float32
			if measure == Jaccard {
				f = jaccardFormula(degree[src], degree[neighbor], s)
			} else {
				f = cosineFormula(degree[src], degree[neighbor], s)
			}
			out = append(out, EdgeSimilarity{
				Source:     uint32(src),
				Neighbor:   uint32(neighbor),
				Similarity: f,
			})
			pos++
		})
	}
	return out
}
