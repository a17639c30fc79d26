package clusterengine

import (
	"testing"

	"github.com/dd0wney/cluso-scan/pkg/coreorder"
	"github.com/dd0wney/cluso-scan/pkg/neighbororder"
	"github.com/dd0wney/cluso-scan/pkg/scangraph"
	"github.com/dd0wney/cluso-scan/pkg/similarity"
)

func buildIndices(t *testing.T) (*neighbororder.Index, *coreorder.Index, int) {
	t.Helper()
	g := scangraph.TwoTrianglesFixture()
	edges, err := similarity.AllEdgeNeighborhoodSimilarities(g, similarity.CosineOptions())
	if err != nil {
		t.Fatalf("AllEdgeNeighborhoodSimilarities: %v", err)
	}
	no := neighbororder.Build(g.NumVertices(), edges)
	co := coreorder.Build(no, g.NumVertices())
	return no, co, g.NumVertices()
}

// At mu=3, the within-triangle edges (cosine ~0.866-1.0) clear an epsilon
// of 0.8, while the bridge edge (2,3) (cosine 0.5, since vertex 2 and
// vertex 3 share no common neighbor) never qualifies for core union, so
// the two triangles stay separate clusters.
func TestClusterAtMu3Epsilon08SplitsTwoTriangles(t *testing.T) {
	no, co, n := buildIndices(t)
	c, err := Cluster(no, co, n, 3, 0.8)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}

	left := map[int]bool{0: true, 1: true, 2: true}
	right := map[int]bool{3: true, 4: true, 5: true}

	leftID := c.ClusterOf(0)
	for v := range left {
		if c.ClusterOf(v) != leftID {
			t.Errorf("vertex %d cluster = %d, want %d (same as vertex 0)", v, c.ClusterOf(v), leftID)
		}
	}

	rightID := c.ClusterOf(4)
	for v := range right {
		if c.ClusterOf(v) != rightID {
			t.Errorf("vertex %d cluster = %d, want %d (same as vertex 4)", v, c.ClusterOf(v), rightID)
		}
	}

	if leftID == rightID {
		t.Errorf("left cluster (%d) and right cluster (%d) should differ at mu=3, eps=0.8", leftID, rightID)
	}
}

func TestClusterAtMu2EpsilonNearZeroMergesAll(t *testing.T) {
	no, co, n := buildIndices(t)
	c, err := Cluster(no, co, n, 2, 0.01)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}

	id := c.ClusterOf(0)
	for v := 0; v < n; v++ {
		if c.ClusterOf(v) != id {
			t.Errorf("vertex %d cluster = %d, want %d (all vertices should merge)", v, c.ClusterOf(v), id)
		}
	}
}

func TestClusterAtMu6Epsilon0LeavesEveryoneUnclustered(t *testing.T) {
	no, co, n := buildIndices(t)
	c, err := Cluster(no, co, n, 6, 0.0)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	for v := 0; v < n; v++ {
		if c.ClusterOf(v) != Unclustered {
			t.Errorf("vertex %d cluster = %d, want Unclustered (max degree 3 < mu-1=5)", v, c.ClusterOf(v))
		}
	}
}

func TestClusterRejectsInvalidMu(t *testing.T) {
	no, co, n := buildIndices(t)
	if _, err := Cluster(no, co, n, 1, 0.5); err == nil {
		t.Error("expected error for mu < 2")
	}
}

func TestClusterRejectsInvalidEpsilon(t *testing.T) {
	no, co, n := buildIndices(t)
	if _, err := Cluster(no, co, n, 2, 1.5); err == nil {
		t.Error("expected error for epsilon > 1")
	}
	if _, err := Cluster(no, co, n, 2, -0.1); err == nil {
		t.Error("expected error for epsilon < 0")
	}
}

func TestClusterIdempotentCoreSet(t *testing.T) {
	no, co, n := buildIndices(t)
	first, err := Cluster(no, co, n, 3, 0.8)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	second, err := Cluster(no, co, n, 3, 0.8)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	for v := 0; v < n; v++ {
		if first.IsCore(v) != second.IsCore(v) {
			t.Errorf("vertex %d core status differs across calls: %v vs %v", v, first.IsCore(v), second.IsCore(v))
		}
	}
}

func TestCoreBorderContract(t *testing.T) {
	no, co, n := buildIndices(t)
	mu, epsilon := uint32(3), float32(0.8)
	c, err := Cluster(no, co, n, mu, epsilon)
	if err != nil {
		t.Fatalf("Cluster: %v", err)
	}
	for v := 0; v < n; v++ {
		if c.IsCore(v) {
			count := no.CountAtLeast(v, epsilon)
			if count < int(mu)-1 {
				t.Errorf("core vertex %d has only %d edges >= epsilon, want >= %d", v, count, mu-1)
			}
			continue
		}
		if c.ClusterOf(v) == Unclustered {
			continue
		}
		found := false
		for _, e := range no.Edges(v) {
			if e.Similarity < epsilon {
				break
			}
			if c.IsCore(int(e.Neighbor)) && c.ClusterOf(int(e.Neighbor)) == c.ClusterOf(v) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("non-core non-unclustered vertex %d has no epsilon-adjacent core matching its cluster id", v)
		}
	}
}
