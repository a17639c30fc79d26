// Package similarity computes one structural-similarity score per directed
// half-edge of an undirected graph: the exact Cosine/Jaccard kernels via
// triangle counting, and the ApproxCosine/ApproxJaccard kernels via
// SimHash/MinHash sketches for high-degree vertex pairs.
package similarity

import "fmt"

// Measure selects which similarity variant AllEdgeNeighborhoodSimilarities
// computes.
type Measure int

const (
	// Cosine computes exact cosine similarity via triangle counting.
	Cosine Measure = iota
	// Jaccard computes exact Jaccard similarity via triangle counting.
	Jaccard
	// ApproxCosine computes SimHash-estimated cosine similarity between
	// high-degree vertex pairs, exact cosine elsewhere.
	ApproxCosine
	// ApproxJaccard computes MinHash-estimated Jaccard similarity between
	// high-degree vertex pairs, exact Jaccard elsewhere.
	ApproxJaccard
)

func (m Measure) String() string {
	switch m {
	case Cosine:
		return "cosine"
	case Jaccard:
		return "jaccard"
	case ApproxCosine:
		return "approx_cosine"
	case ApproxJaccard:
		return "approx_jaccard"
	default:
		return fmt.Sprintf("similarity.Measure(%d)", int(m))
	}
}

// Options configures an index build's similarity kernel.
type Options struct {
	Measure Measure
	// NumSamples is the SimHash/MinHash fingerprint width. Required (>0)
	// for the Approx* measures; ignored for exact measures.
	NumSamples int
	// Seed drives the deterministic RNG behind the approximate variants.
	// Two builds with the same seed and NumSamples are bit-for-bit
	// reproducible modulo parallel floating-point summation order.
	Seed uint64
}

// CosineOptions selects exact cosine similarity.
func CosineOptions() Options {
	return Options{Measure: Cosine}
}

// JaccardOptions selects exact Jaccard similarity.
func JaccardOptions() Options {
	return Options{Measure: Jaccard}
}

// ApproxCosineOptions selects SimHash-approximated cosine similarity for
// high-degree vertex pairs.
func ApproxCosineOptions(numSamples int, seed uint64) Options {
	return Options{Measure: ApproxCosine, NumSamples: numSamples, Seed: seed}
}

// ApproxJaccardOptions selects MinHash-approximated Jaccard similarity for
// high-degree vertex pairs.
func ApproxJaccardOptions(numSamples int, seed uint64) Options {
	return Options{Measure: ApproxJaccard, NumSamples: numSamples, Seed: seed}
}

// ParseMeasure maps a config/flag string to a Measure. Accepts the same
// spellings Measure.String() produces.
func ParseMeasure(s string) (Measure, error) {
	switch s {
	case "cosine":
		return Cosine, nil
	case "jaccard":
		return Jaccard, nil
	case "approx_cosine":
		return ApproxCosine, nil
	case "approx_jaccard":
		return ApproxJaccard, nil
	default:
		return 0, fmt.Errorf("similarity: unknown measure %q", s)
	}
}

// Validate checks the options are internally consistent.
func (o Options) Validate() error {
	switch o.Measure {
	case Cosine, Jaccard:
		return nil
	case ApproxCosine, ApproxJaccard:
		if o.NumSamples <= 0 {
			return fmt.Errorf("similarity: %s requires NumSamples > 0, got %d", o.Measure, o.NumSamples)
		}
		return nil
	default:
		return fmt.Errorf("similarity: unknown measure %d", int(o.Measure))
	}
}

// degreeThreshold is the minimum degree at which a vertex is treated as
// high-degree for the approximate variants: below it, exact computation is
// cheaper than building and comparing fingerprints.
func (o Options) degreeThreshold() int {
	return 4 * o.NumSamples
}

// EdgeSimilarity is one directed half-edge's structural similarity score.
// For every undirected edge {u,v} two entries exist, (u,v) and (v,u),
// carrying the same Similarity value in exact mode.
type EdgeSimilarity struct {
	Source     uint32
	Neighbor   uint32
	Similarity float32
}
