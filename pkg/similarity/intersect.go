package similarity

// intersectWithIndex walks two ascending-sorted slices and reports every
// common element along with its position in each input. For each element
// of the shorter list it binary-searches the longer one starting from the
// last match, which locates a counter slot for (u, w) or (v, w) without a
// second pass over either list — the "galloping search" primitive the
// triangle-counting kernel is built on.
func intersectWithIndex(a, b []int32, fn func(common int32, posA, posB int)) {
	if len(a) == 0 || len(b) == 0 {
		return
	}

	short, long := a, b
	shortIsA := true
	if len(b) < len(a) {
		short, long = b, a
		shortIsA = false
	}

	longPos := 0
	for i, v := range short {
		lo, hi := longPos, len(long)
		for lo < hi {
			mid := (lo + hi) / 2
			if long[mid] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < len(long) && long[lo] == v {
			if shortIsA {
				fn(v, i, lo)
			} else {
				fn(v, lo, i)
			}
			longPos = lo + 1
		} else {
			longPos = lo
		}
	}
}
