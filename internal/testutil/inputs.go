package testutil

import "math/rand"

// UniformIndices generates n bin indices uniformly distributed in [0, npix)
// with a fixed seed for reproducibility.
func UniformIndices(seed int64, n, npix int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(npix)
	}
	return out
}

// NormalValues generates n standard-normal measurements with a fixed seed
// for reproducibility.
func NormalValues(seed int64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}
	return out
}
