package similarity

import (
	"github.com/dd0wney/cluso-scan/pkg/rng"
	"github.com/dd0wney/cluso-scan/pkg/scangraph"
)

// AllEdgeNeighborhoodSimilarities computes one EdgeSimilarity per directed
// half-edge of g. Exact measures run triangle counting over the whole
// graph. Approximate measures additionally build SimHash or MinHash
// fingerprints for every high-degree vertex (degree >= 4*NumSamples) that
// has at least one high-degree neighbor, and
// overwrite the exact value on any edge whose endpoints are both
// high-degree; edges with at least one low-degree endpoint keep their
// exact value, matching the spec's threshold rule.
func AllEdgeNeighborhoodSimilarities(g scangraph.Graph, opts Options) ([]EdgeSimilarity, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := scangraph.Validate(g); err != nil {
		return nil, err
	}

	exactMeasure := Cosine
	if opts.Measure == Jaccard || opts.Measure == ApproxJaccard {
		exactMeasure = Jaccard
	}

	out := exactSimilarities(g, exactMeasure)

	switch opts.Measure {
	case Cosine, Jaccard:
		return out, nil
	case ApproxCosine:
		overlaySimHash(g, out, opts)
	case ApproxJaccard:
		overlayMinHash(g, out, opts)
	}

	return out, nil
}

func highDegreeSet(g scangraph.Graph, threshold int) []bool {
	n := g.NumVertices()
	high := make([]bool, n)
	for v := 0; v < n; v++ {
		high[v] = g.OutDegree(v) >= threshold
	}
	return high
}

func overlaySimHash(g scangraph.Graph, edges []EdgeSimilarity, opts Options) {
	threshold := opts.degreeThreshold()
	high := highDegreeSet(g, threshold)

	fingerprints := make(map[int]simHashFingerprint)
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		// The overlay loop below only reads fingerprints[u]/fingerprints[v]
		// when both endpoints are high-degree, so a vertex with no
		// high-degree neighbor can never have its fingerprint looked up.
		if !high[v] || !hasHighDegreeNeighbor(g, v, high) {
			continue
		}
		fingerprints[v] = buildSimHashFingerprint(g, v, opts.Seed, opts.NumSamples)
	}

	for i := range edges {
		u, v := int(edges[i].Source), int(edges[i].Neighbor)
		if high[u] && high[v] {
			edges[i].Similarity = clamp(simHashCosine(fingerprints[u], fingerprints[v]))
		}
	}
}

func overlayMinHash(g scangraph.Graph, edges []EdgeSimilarity, opts Options) {
	threshold := opts.degreeThreshold()
	high := highDegreeSet(g, threshold)
	randomOffset := rng.Hash64(opts.Seed, minHashOffsetSalt)

	fingerprints := make(map[int]minHashFingerprint)
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		if !high[v] || !hasHighDegreeNeighbor(g, v, high) {
			continue
		}
		fingerprints[v] = buildMinHashFingerprint(g, v, randomOffset, opts.Seed, opts.NumSamples)
	}

	for i := range edges {
		u, v := int(edges[i].Source), int(edges[i].Neighbor)
		if high[u] && high[v] {
			fu, okU := fingerprints[u]
			fv, okV := fingerprints[v]
			if okU && okV {
				edges[i].Similarity = clamp(minHashJaccard(fu, fv))
			}
		}
	}
}

func hasHighDegreeNeighbor(g scangraph.Graph, v int, high []bool) bool {
	found := false
	g.MapOutNeighbors(v, func(src, neighbor, idx int) {
		if high[neighbor] {
			found = true
		}
	})
	return found
}

// minHashOffsetSalt is an arbitrary fixed key used to derive the per-build
// random_offset from the caller's seed.
const minHashOffsetSalt = 0x4D696E486173685F
