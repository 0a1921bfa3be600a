// Package specbin bins FFT power spectra into frequency bands.
//
// Spectral band summation is grouped summation over FFT bins: every spectral
// bin maps to the band containing its center frequency, and the per-bin
// powers are scatter-added into the band buffer. The accumulation itself is
// [binned.Accumulate], so band results inherit its reproducibility contract.
package specbin

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-binned/binned"
)

var (
	ErrEmptySignal       = errors.New("specbin: signal is empty")
	ErrInvalidSampleRate = errors.New("specbin: sample rate must be positive")
	ErrBandEdges         = errors.New("specbin: need at least two strictly ascending band edges")
	ErrInvalidBandCount  = errors.New("specbin: band count must be positive")
	ErrFrequencyOrder    = errors.New("specbin: lower frequency must be positive and below upper frequency")
)

// BandPower computes the power spectrum of signal and sums it into frequency
// bands. edges holds len(result)+1 strictly ascending band boundaries in Hz;
// band k covers [edges[k], edges[k+1]). Spectral bins outside the outermost
// edges are discarded.
//
// The signal is Hann-windowed and zero-padded to the next power of two.
// Result values are summed one-sided periodogram powers per band, without
// density normalization; use [binned.Scale] on the result if a normalized
// form is needed.
func BandPower(signal []float64, sampleRate float64, edges []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if err := validateEdges(edges); err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(len(signal))

	windowed := make([]float64, len(signal))
	vecmath.MulBlock(windowed, signal, hann(len(signal)))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("specbin: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range windowed {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("specbin: forward FFT failed: %w", err)
	}

	// One-sided power spectrum.
	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for k := range binCount {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	power := make([]float64, binCount)
	vecmath.Power(power, re, im)

	// Map each spectral bin to its band and scatter-add the powers.
	binHz := sampleRate / float64(fftSize)
	bandIdx := make([]int, 0, binCount)
	bandVal := make([]float64, 0, binCount)
	for k := range binCount {
		band := bandFor(float64(k)*binHz, edges)
		if band < 0 {
			continue
		}
		bandIdx = append(bandIdx, band)
		bandVal = append(bandVal, power[k])
	}

	out := make([]float64, len(edges)-1)
	if err := binned.Accumulate(out, bandIdx, bandVal); err != nil {
		return nil, err
	}

	return out, nil
}

// LogEdges returns nBands+1 logarithmically spaced band edges covering
// [fLow, fHigh], the usual octave-fraction layout for spectral summaries.
func LogEdges(fLow, fHigh float64, nBands int) ([]float64, error) {
	if nBands <= 0 {
		return nil, ErrInvalidBandCount
	}
	if fLow <= 0 || fLow >= fHigh {
		return nil, ErrFrequencyOrder
	}

	edges := make([]float64, nBands+1)
	ratio := math.Log(fHigh / fLow)
	for i := range edges {
		edges[i] = fLow * math.Exp(ratio*float64(i)/float64(nBands))
	}
	// Guard against rounding on the last edge.
	edges[nBands] = fHigh

	return edges, nil
}

func validateEdges(edges []float64) error {
	if len(edges) < 2 {
		return ErrBandEdges
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("%w: edge %d (%v) <= edge %d (%v)",
				ErrBandEdges, i, edges[i], i-1, edges[i-1])
		}
	}
	return nil
}

// bandFor returns the band index containing f, or -1 when f falls outside
// [edges[0], edges[len-1]).
func bandFor(f float64, edges []float64) int {
	if f < edges[0] || f >= edges[len(edges)-1] {
		return -1
	}
	// First edge strictly above f; the band is the interval to its left.
	i := sort.Search(len(edges), func(i int) bool { return edges[i] > f })
	return i - 1
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
