package binned

import (
	"fmt"

	"github.com/cwbudde/algo-binned/internal/scatter"
)

// Merge co-adds two accumulator buffers element-wise: dst[k] += src[k].
// Both buffers must have the same length (the same NPIX).
//
// Accumulating two halves of an input into independent zeroed buffers and
// merging them is equivalent, up to floating-point rounding, to accumulating
// the whole input at once.
func Merge(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d dst, %d src", ErrLengthMismatch, len(dst), len(src))
	}

	scatter.AddBlockInPlace(dst, src)

	return nil
}

// Scale rescales a buffer uniformly: buf[k] *= s. Typical use is
// normalizing accumulated sums to a density or rate.
func Scale(buf []float64, s float64) {
	scatter.ScaleBlockInPlace(buf, s)
}
