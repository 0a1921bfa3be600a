package specbin

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-binned/internal/testutil"
)

func TestBandPowerSineConcentration(t *testing.T) {
	const (
		sampleRate = 48000.0
		freq       = 1000.0
	)

	signal := testutil.DeterministicSine(freq, sampleRate, 1.0, 4800)
	edges := []float64{500, 750, 1250, 2000}

	bands, err := BandPower(signal, sampleRate, edges)
	if err != nil {
		t.Fatalf("BandPower: %v", err)
	}
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}

	testutil.RequireFinite(t, bands)
	for k, p := range bands {
		if p < 0 {
			t.Fatalf("band %d: negative power %v", k, p)
		}
	}

	// A 1 kHz tone must dominate the [750, 1250) band.
	if bands[1] <= 10*(bands[0]+bands[2]) {
		t.Fatalf("band powers %v: tone band does not dominate", bands)
	}
}

func TestBandPowerAdditivity(t *testing.T) {
	const sampleRate = 8000.0

	signal := testutil.DeterministicSine(440, sampleRate, 0.5, 2048)

	coarse := []float64{100, 900}
	fine := []float64{100, 500, 900}

	coarseBands, err := BandPower(signal, sampleRate, coarse)
	if err != nil {
		t.Fatalf("BandPower coarse: %v", err)
	}
	fineBands, err := BandPower(signal, sampleRate, fine)
	if err != nil {
		t.Fatalf("BandPower fine: %v", err)
	}

	// Splitting a band must preserve the total within rounding.
	sum := fineBands[0] + fineBands[1]
	if math.Abs(sum-coarseBands[0]) > 1e-9*math.Max(1, coarseBands[0]) {
		t.Fatalf("fine bands sum to %v, coarse band is %v", sum, coarseBands[0])
	}
}

func TestBandPowerErrors(t *testing.T) {
	signal := []float64{1, 2, 3, 4}

	tests := []struct {
		name       string
		signal     []float64
		sampleRate float64
		edges      []float64
		want       error
	}{
		{"empty signal", nil, 48000, []float64{100, 200}, ErrEmptySignal},
		{"zero sample rate", signal, 0, []float64{100, 200}, ErrInvalidSampleRate},
		{"negative sample rate", signal, -1, []float64{100, 200}, ErrInvalidSampleRate},
		{"single edge", signal, 48000, []float64{100}, ErrBandEdges},
		{"descending edges", signal, 48000, []float64{200, 100}, ErrBandEdges},
		{"duplicate edges", signal, 48000, []float64{100, 100}, ErrBandEdges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BandPower(tt.signal, tt.sampleRate, tt.edges)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLogEdges(t *testing.T) {
	edges, err := LogEdges(100, 1600, 4)
	if err != nil {
		t.Fatalf("LogEdges: %v", err)
	}

	want := []float64{100, 200, 400, 800, 1600}
	testutil.RequireSliceNearlyEqual(t, edges, want, 1e-9)
}

func TestLogEdgesErrors(t *testing.T) {
	if _, err := LogEdges(100, 1600, 0); !errors.Is(err, ErrInvalidBandCount) {
		t.Fatalf("error = %v, want ErrInvalidBandCount", err)
	}
	if _, err := LogEdges(0, 1600, 4); !errors.Is(err, ErrFrequencyOrder) {
		t.Fatalf("error = %v, want ErrFrequencyOrder", err)
	}
	if _, err := LogEdges(1600, 100, 4); !errors.Is(err, ErrFrequencyOrder) {
		t.Fatalf("error = %v, want ErrFrequencyOrder", err)
	}
}

func TestBandFor(t *testing.T) {
	edges := []float64{100, 200, 400}

	tests := []struct {
		f    float64
		want int
	}{
		{50, -1},   // below range
		{100, 0},   // exact left edge belongs to the band
		{150, 0},   // interior
		{200, 1},   // boundary belongs to the upper band
		{399, 1},   // interior
		{400, -1},  // upper edge is exclusive
		{1000, -1}, // above range
	}

	for _, tt := range tests {
		if got := bandFor(tt.f, edges); got != tt.want {
			t.Fatalf("bandFor(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestHannWindow(t *testing.T) {
	w := hann(8)
	if math.Abs(w[0]) > 1e-15 || math.Abs(w[7]) > 1e-15 {
		t.Fatalf("symmetric Hann endpoints = %v, %v, want 0", w[0], w[7])
	}
	for i, v := range w {
		if v < 0 || v > 1 {
			t.Fatalf("w[%d] = %v out of [0, 1]", i, v)
		}
	}

	if w := hann(1); w[0] != 1 {
		t.Fatalf("hann(1) = %v, want [1]", w)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 1}, {2, 2}, {3, 4}, {1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.n); got != tt.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
