package similarity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-scan/pkg/scangraph"
)

// randomUndirectedGraph builds a simple undirected CSRGraph over n
// vertices from a flat list of candidate (u, v) pairs, dropping
// self-loops and out-of-range pairs so gopter's generators can stay
// unconstrained.
func randomUndirectedGraph(n int, candidates []int) *scangraph.CSRGraph {
	if n < 2 {
		n = 2
	}
	var edges [][2]int
	for i := 0; i+1 < len(candidates); i += 2 {
		u := ((candidates[i] % n) + n) % n
		v := ((candidates[i+1] % n) + n) % n
		if u == v {
			continue
		}
		edges = append(edges, [2]int{u, v})
	}
	g, err := scangraph.NewCSRGraph(n, edges)
	if err != nil {
		return nil
	}
	return g
}

// TestSimilarityInvariants checks, over many randomly generated small
// graphs, the universal invariants every exact similarity report must
// satisfy: both half-edges of an undirected edge carry the same value,
// and every value lies within [0, 1].
func TestSimilarityInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("exact cosine similarity is symmetric and within [0,1]", prop.ForAll(
		func(candidates []int) bool {
			g := randomUndirectedGraph(12, candidates)
			if g == nil {
				return true
			}
			edges, err := AllEdgeNeighborhoodSimilarities(g, CosineOptions())
			if err != nil {
				return true
			}
			return symmetricAndInRange(g, edges)
		},
		gen.SliceOf(gen.IntRange(0, 11)),
	))

	properties.Property("exact jaccard similarity is symmetric and within [0,1]", prop.ForAll(
		func(candidates []int) bool {
			g := randomUndirectedGraph(12, candidates)
			if g == nil {
				return true
			}
			edges, err := AllEdgeNeighborhoodSimilarities(g, JaccardOptions())
			if err != nil {
				return true
			}
			return symmetricAndInRange(g, edges)
		},
		gen.SliceOf(gen.IntRange(0, 11)),
	))

	properties.TestingRun(t)
}

func symmetricAndInRange(g *scangraph.CSRGraph, edges []EdgeSimilarity) bool {
	bySourceAndNeighbor := make(map[[2]uint32]float32, len(edges))
	for _, e := range edges {
		if e.Similarity < 0 || e.Similarity > 1 {
			return false
		}
		bySourceAndNeighbor[[2]uint32{e.Source, e.Neighbor}] = e.Similarity
	}
	for _, e := range edges {
		reverse, ok := bySourceAndNeighbor[[2]uint32{e.Neighbor, e.Source}]
		if !ok || reverse != e.Similarity {
			return false
		}
	}
	return true
}
