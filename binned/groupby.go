package binned

import "fmt"

// GroupSum returns a mapping from each distinct index value to the sum of
// its paired values, accumulated in ascending position order. It is the
// map-based group-by strategy for the same contract as [Accumulate] and is
// used to cross-validate the scatter kernels.
//
// Indices absent from index have no key in the result; a dense buffer holds
// 0.0 at those positions, and the two representations are equivalent under
// the convention "missing key == 0". GroupSum accepts any non-negative or
// negative index since it imposes no bin count; only the length precondition
// applies.
func GroupSum(index []int, value []float64) (map[int]float64, error) {
	if len(index) != len(value) {
		return nil, fmt.Errorf("%w: %d indices, %d values", ErrLengthMismatch, len(index), len(value))
	}

	sums := make(map[int]float64)
	for i, k := range index {
		sums[k] += value[i]
	}

	return sums, nil
}
