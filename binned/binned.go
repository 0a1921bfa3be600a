package binned

import (
	"fmt"

	"github.com/cwbudde/algo-binned/internal/scatter"
)

// Accumulate adds each value into out at the bin named by its paired index:
//
//	out[index[i]] += value[i]   for i = 0, 1, ..., len(index)-1
//
// out is mutated in place and must be zero-initialized by the caller before
// the first use (see [Reset]). Positions are processed in strictly ascending
// order, which makes the result bit-reproducible even though floating-point
// addition is not associative.
//
// Length equality of index and value is validated before any mutation;
// each index is validated immediately before its write. On an out-of-range
// index the call stops and returns an error wrapping [ErrIndexOutOfRange];
// writes made before the offending position remain applied, so a retry on a
// zero-reset buffer reproduces the same partial-then-error behavior
// deterministically.
func Accumulate(out []float64, index []int, value []float64) error {
	if len(index) != len(value) {
		return fmt.Errorf("%w: %d indices, %d values", ErrLengthMismatch, len(index), len(value))
	}

	if pos := scatter.ScatterAdd(out, index, value); pos >= 0 {
		return fmt.Errorf("%w: index %d (position %d) outside [0, %d)",
			ErrIndexOutOfRange, index[pos], pos, len(out))
	}

	return nil
}

// Counts increments counts at each bin named by index (scatter-add of 1.0),
// producing the bin occupancy of the index array. Validation and partial
// write semantics match [Accumulate].
func Counts(counts []float64, index []int) error {
	if pos := scatter.CountInto(counts, index); pos >= 0 {
		return fmt.Errorf("%w: index %d (position %d) outside [0, %d)",
			ErrIndexOutOfRange, index[pos], pos, len(counts))
	}

	return nil
}

// Means writes per-bin averages into dst: dst[k] = sums[k] / counts[k],
// or 0 where counts[k] is zero (the "missing key == 0" convention).
// All three slices must have the same length.
func Means(dst, sums, counts []float64) error {
	if len(sums) != len(counts) || len(dst) != len(sums) {
		return fmt.Errorf("%w: %d dst, %d sums, %d counts",
			ErrLengthMismatch, len(dst), len(sums), len(counts))
	}

	for k := range dst {
		if counts[k] == 0 {
			dst[k] = 0
			continue
		}
		dst[k] = sums[k] / counts[k]
	}

	return nil
}

// Reset zeroes an accumulator buffer for reuse.
func Reset(buf []float64) {
	clear(buf)
}
