package naive

// ScatterAdd adds each value into out at its paired bin index, one position
// at a time in ascending order. Returns the position of the first index
// outside [0, len(out)), or -1 when all writes were applied.
// This is the straight-loop baseline implementation.
func ScatterAdd(out []float64, index []int, value []float64) int {
	n := len(out)
	for i, k := range index {
		if k < 0 || k >= n {
			return i
		}
		out[k] += value[i]
	}

	return -1
}

// CountInto increments counts at each bin index in ascending position order.
// Returns the position of the first out-of-range index, or -1.
func CountInto(counts []float64, index []int) int {
	n := len(counts)
	for i, k := range index {
		if k < 0 || k >= n {
			return i
		}
		counts[k]++
	}

	return -1
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("scatter: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// ScaleBlockInPlace performs in-place element-wise scaling: dst[i] *= scalar.
func ScaleBlockInPlace(dst []float64, scalar float64) {
	for i := range dst {
		dst[i] *= scalar
	}
}
