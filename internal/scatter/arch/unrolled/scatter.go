package unrolled

// ScatterAdd adds each value into out at its paired bin index, processing
// four positions per iteration to amortize loop overhead. The writes happen
// in the same ascending position order as the naive kernel, so results are
// bit-identical even when the same bin repeats within a group of four.
// Returns the position of the first index outside [0, len(out)), or -1.
func ScatterAdd(out []float64, index []int, value []float64) int {
	n := len(out)

	i := 0
	for ; i+3 < len(index); i += 4 {
		k0, k1, k2, k3 := index[i], index[i+1], index[i+2], index[i+3]

		if k0 < 0 || k0 >= n {
			return i
		}
		out[k0] += value[i]

		if k1 < 0 || k1 >= n {
			return i + 1
		}
		out[k1] += value[i+1]

		if k2 < 0 || k2 >= n {
			return i + 2
		}
		out[k2] += value[i+2]

		if k3 < 0 || k3 >= n {
			return i + 3
		}
		out[k3] += value[i+3]
	}

	for ; i < len(index); i++ {
		k := index[i]
		if k < 0 || k >= n {
			return i
		}
		out[k] += value[i]
	}

	return -1
}

// CountInto increments counts at each bin index, four positions per
// iteration, same ascending order and return convention as ScatterAdd.
func CountInto(counts []float64, index []int) int {
	n := len(counts)

	i := 0
	for ; i+3 < len(index); i += 4 {
		k0, k1, k2, k3 := index[i], index[i+1], index[i+2], index[i+3]

		if k0 < 0 || k0 >= n {
			return i
		}
		counts[k0]++

		if k1 < 0 || k1 >= n {
			return i + 1
		}
		counts[k1]++

		if k2 < 0 || k2 >= n {
			return i + 2
		}
		counts[k2]++

		if k3 < 0 || k3 >= n {
			return i + 3
		}
		counts[k3]++
	}

	for ; i < len(index); i++ {
		k := index[i]
		if k < 0 || k >= n {
			return i
		}
		counts[k]++
	}

	return -1
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i],
// two elements per iteration. Slices must have equal length. Panics if
// lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("scatter: slice length mismatch")
	}

	i := 0
	for ; i+1 < len(dst); i += 2 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
	}
	if i < len(dst) {
		dst[i] += src[i]
	}
}

// ScaleBlockInPlace performs in-place element-wise scaling: dst[i] *= scalar.
func ScaleBlockInPlace(dst []float64, scalar float64) {
	i := 0
	for ; i+1 < len(dst); i += 2 {
		dst[i] *= scalar
		dst[i+1] *= scalar
	}
	if i < len(dst) {
		dst[i] *= scalar
	}
}
