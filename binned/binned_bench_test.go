package binned

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-binned/internal/testutil"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func BenchmarkAccumulate(b *testing.B) {
	const npix = 1024

	sizes := []int{1024, 16384, 262144, 1048576}
	for _, n := range sizes {
		index := testutil.UniformIndices(1, n, npix)
		value := testutil.NormalValues(2, n)
		out := make([]float64, npix)

		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if err := Accumulate(out, index, value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGroupSum(b *testing.B) {
	const npix = 1024

	sizes := []int{1024, 16384, 262144}
	for _, n := range sizes {
		index := testutil.UniformIndices(1, n, npix)
		value := testutil.NormalValues(2, n)

		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := GroupSum(index, value); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMerge(b *testing.B) {
	for _, npix := range []int{1024, 65536} {
		dst := testutil.NormalValues(1, npix)
		src := testutil.NormalValues(2, npix)

		b.Run(itoa(npix), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(npix * 8))

			for range b.N {
				if err := Merge(dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
