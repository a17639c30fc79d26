package similarity

import (
	"math"
	"math/bits"

	"github.com/dd0wney/cluso-scan/pkg/rng"
	"github.com/dd0wney/cluso-scan/pkg/scangraph"
)

// simHashFingerprint holds a packed bit-fingerprint of a fixed number of
// samples, plus the sample count itself so comparisons can mask unused
// high bits in the final word when numSamples isn't a multiple of 64.
type simHashFingerprint struct {
	words      []uint64
	numSamples int
}

// buildSimHashFingerprint computes vertex v's SimHash bit-fingerprint: bit
// i is the sign of v's own i-th normal plus the sum of its neighbors' i-th
// normals. Per-neighbor normals are regenerated deterministically from the
// seed rather than cached, and accumulated in ascending neighbor order so
// the floating-point sum is reproducible regardless of how the outer
// parallel-for schedules vertices.
func buildSimHashFingerprint(g scangraph.Graph, v int, seed uint64, numSamples int) simHashFingerprint {
	acc := make([]float64, numSamples)

	addNormals := func(vertex int) {
		s := rng.NewStream(seed, uint64(vertex))
		for i := 0; i < numSamples; i++ {
			acc[i] += s.Gaussian()
		}
	}

	addNormals(v)
	g.MapOutNeighbors(v, func(src, neighbor, idx int) {
		addNormals(neighbor)
	})

	numWords := (numSamples + 63) / 64
	words := make([]uint64, numWords)
	for i, val := range acc {
		if val > 0 {
			words[i/64] |= 1 << uint(i%64)
		}
	}

	return simHashFingerprint{words: words, numSamples: numSamples}
}

// hammingPopcount counts the bits that differ between two fingerprints of
// equal width, ignoring any padding bits beyond numSamples in the final
// word.
func hammingPopcount(a, b simHashFingerprint) int {
	count := 0
	for i := range a.words {
		x := a.words[i] ^ b.words[i]
		if i == len(a.words)-1 {
			if rem := a.numSamples % 64; rem != 0 {
				x &= (uint64(1) << uint(rem)) - 1
			}
		}
		count += bits.OnesCount64(x)
	}
	return count
}

// simHashCosine estimates cosine similarity from the angle implied by the
// fraction of differing fingerprint bits.
func simHashCosine(a, b simHashFingerprint) float32 {
	h := hammingPopcount(a, b)
	theta := float64(h) * math.Pi / float64(a.numSamples)
	return float32(math.Cos(theta))
}

// minHashFingerprint holds numSamples 64-bit minima, one per hash family
// member, computed over a vertex's closed neighborhood.
type minHashFingerprint struct {
	minima []uint64
}

// buildMinHashFingerprint computes vertex v's MinHash fingerprint: for each
// sample s, the minimum of h_s(x) over every x in v's closed neighborhood
// {v} ∪ N(v), where h_s(x) = H(randomOffset + numSamples*x + s).
func buildMinHashFingerprint(g scangraph.Graph, v int, randomOffset uint64, seed uint64, numSamples int) minHashFingerprint {
	minima := make([]uint64, numSamples)
	for s := 0; s < numSamples; s++ {
		minima[s] = minHashSample(seed, randomOffset, numSamples, s, uint64(v))
	}

	g.MapOutNeighbors(v, func(src, neighbor, idx int) {
		for s := 0; s < numSamples; s++ {
			h := minHashSample(seed, randomOffset, numSamples, s, uint64(neighbor))
			if h < minima[s] {
				minima[s] = h
			}
		}
	})

	return minHashFingerprint{minima: minima}
}

func minHashSample(seed, randomOffset uint64, numSamples, s int, x uint64) uint64 {
	key := randomOffset + uint64(numSamples)*x + uint64(s)
	return rng.Hash64(seed, key)
}

// minHashJaccard estimates Jaccard similarity as the fraction of sample
// positions whose minima agree between two fingerprints.
func minHashJaccard(a, b minHashFingerprint) float32 {
	matches := 0
	for i := range a.minima {
		if a.minima[i] == b.minima[i] {
			matches++
		}
	}
	return float32(matches) / float32(len(a.minima))
}

// clamp restricts an approximate similarity value to [-1, 1], the
// tolerance the spec allows for floating-point and sampling noise.
func clamp(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
