// Package unionfind provides a lock-free disjoint-set structure used to
// merge core vertices into clusters during parallel core-union: workers
// union core-to-core ε-edges concurrently, with CAS guarding every write to
// parent so two workers racing to merge the same pair of roots never
// corrupt the forest.
package unionfind

import "sync/atomic"

// UnionFind is a lock-free union-find over the vertex ids [0, n). Find and
// Union are safe to call concurrently from multiple goroutines; no
// external locking is required.
type UnionFind struct {
	parent []int32
}

// New creates a union-find over n singleton sets.
func New(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int32, n)}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

// Find returns the representative of x's set, halving the path with
// best-effort CAS writes (each visited node is pointed at its grandparent)
// so later Finds are cheap without requiring every racing writer to succeed.
func (uf *UnionFind) Find(x int) int {
	root := int32(x)
	for {
		p := atomic.LoadInt32(&uf.parent[root])
		if p == root {
			break
		}
		gp := atomic.LoadInt32(&uf.parent[p])
		atomic.CompareAndSwapInt32(&uf.parent[root], p, gp)
		root = p
	}

	return int(root)
}

// Union merges the sets containing x and y, always pointing the
// numerically smaller root at the larger one so repeated unions converge
// on a consistent root regardless of which worker gets there first. It
// reports whether x and y were in different sets (a merge happened).
func (uf *UnionFind) Union(x, y int) bool {
	for {
		px, py := int32(uf.Find(x)), int32(uf.Find(y))
		if px == py {
			return false
		}
		if px > py {
			px, py = py, px
		}
		if atomic.CompareAndSwapInt32(&uf.parent[px], px, py) {
			return true
		}
	}
}

// Connected reports whether x and y are currently in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Len returns the number of elements the union-find was created over.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
