package parfor

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkGrain is a per-goroutine chunk size of 256 indices. For,
// ForWorkers and ReduceInt64 do not consult it: they always split [0, n)
// into one chunk per worker, however small n is.
const DefaultChunkGrain = 256

// Workers reports the fork-join fan-out used when the caller does not pin a
// worker count explicitly: one goroutine per logical CPU.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// For runs fn(i) for every i in [0, n) across Workers() goroutines and
// blocks until every chunk has finished. A chunk stops at its first error;
// other chunks run to completion, and the first error seen is returned. It is the
// parallel-for every per-vertex loop in the similarity kernel, neighbor-order
// build, core-order build, and cluster engine is expressed in terms of.
func For(n int, fn func(i int) error) error {
	return ForWorkers(n, Workers(), fn)
}

// ForWorkers is For with an explicit worker count, primarily for tests that
// need deterministic scheduling. Chunks are dispatched onto a WorkerPool
// sized to workers rather than spawning one goroutine per chunk directly,
// so a caller driving many small For calls back to back (the index builder
// does, once per phase) reuses the same bounded goroutine pool machinery
// pkg/parfor exposes standalone as WorkerPool.
func ForWorkers(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunkSize := (n + workers - 1) / workers
	if chunkSize < 1 {
		chunkSize = 1
	}

	pool, err := NewWorkerPool(workers)
	if err != nil {
		return err
	}
	defer pool.Close()

	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		s, e := start, end
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			for i := s; i < e; i++ {
				if err := fn(i); err != nil {
					errOnce.Do(func() { firstErr = err })
					return
				}
			}
		})
	}
	wg.Wait()
	return firstErr
}

// ReduceInt64 runs fn(i) for every i in [0, n), sums the partial results
// sequentially within each chunk, and combines chunk totals with a single
// atomic add. Chunk-local sequential accumulation keeps the floating-point
// analogue of this reduction order-stable per chunk, matching the
// determinism-modulo-parallel-schedule contract used for approximate
// similarity sums.
func ReduceInt64(n int, fn func(i int) int64) int64 {
	if n <= 0 {
		return 0
	}
	workers := Workers()
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	var total int64
	var g errgroup.Group
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		s, e := start, end
		g.Go(func() error {
			var partial int64
			for i := s; i < e; i++ {
				partial += fn(i)
			}
			atomic.AddInt64(&total, partial)
			return nil
		})
	}
	_ = g.Wait()
	return total
}

// PrefixSum computes an exclusive prefix sum of values, returning a slice of
// length len(values)+1 where result[i] is the sum of values[:i] and
// result[len(values)] is the grand total. Offsets arrays (the CSR `offsets`
// table of the similarity kernel's oriented graph) are built this way.
func PrefixSum(values []int64) []int64 {
	out := make([]int64, len(values)+1)
	var sum int64
	for i, v := range values {
		out[i] = sum
		sum += v
	}
	out[len(values)] = sum
	return out
}

// SampleSort sorts a slice in place using the ordering given by less. It is
// named for the parallel sample-sort primitive the spec assumes; this
// single-machine implementation delegates to an introsort-family algorithm
// since the in-memory edge lists SCAN sorts never approach the sizes where
// a parallel sample sort would pay for its own coordination overhead.
func SampleSort[T any](items []T, less func(a, b T) bool) {
	sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// SampleSortOrdered sorts a slice of ordered values ascending.
func SampleSortOrdered[T constraints.Ordered](items []T) {
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
}
