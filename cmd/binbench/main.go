// Command binbench benchmarks the scatter-add binning kernels.
//
// Usage:
//
//	binbench [flags]
//
// It generates N uniformly distributed bin indices in [0, NPIX) with
// standard-normal values, cross-checks every registered kernel and the
// map-based group-by against the naive reference, then reports the best
// wall-clock time per strategy.
//
// Examples:
//
//	binbench
//	binbench -n 50000000 -npix 49152
//	binbench -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-binned/binned"
	"github.com/cwbudde/algo-binned/internal/scatter"
	"github.com/cwbudde/algo-binned/internal/scatter/arch/naive"
	"github.com/cwbudde/algo-binned/internal/scatter/registry"
)

func main() {
	n := flag.Int("n", 10_000_000, "number of index/value entries")
	npix := flag.Int("npix", 1024, "number of bins")
	seed := flag.Int64("seed", 1, "random seed for input generation")
	runs := flag.Int("runs", 5, "timed repetitions per strategy (best is reported)")
	list := flag.Bool("list", false, "list registered kernels and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: binbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks scatter-add binning strategies against each other.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		listKernels()
		return
	}

	if *n <= 0 || *npix <= 0 || *runs <= 0 {
		fmt.Fprintln(os.Stderr, "binbench: -n, -npix and -runs must be positive")
		os.Exit(2)
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s kernel=%s n=%d npix=%d seed=%d\n\n",
		features.Architecture, scatter.SelectedName(), *n, *npix, *seed)

	index, value := generate(*seed, *n, *npix)

	reference := make([]float64, *npix)
	if pos := naive.ScatterAdd(reference, index, value); pos != -1 {
		fmt.Fprintf(os.Stderr, "binbench: reference kernel rejected index at position %d\n", pos)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "strategy\tbest\tthroughput")

	for _, entry := range registry.Global.ListEntries() {
		best, err := timeKernel(entry, reference, index, value, *npix, *runs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "binbench: %v\n", err)
			os.Exit(1)
		}
		report(w, entry.Name, best, *n)
	}

	best, err := timeGroupBy(reference, index, value, *runs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "binbench: %v\n", err)
		os.Exit(1)
	}
	report(w, "group-by (map)", best, *n)

	w.Flush()
}

func listKernels() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tpriority\tsimd")
	for _, entry := range registry.Global.ListEntries() {
		fmt.Fprintf(w, "%s\t%d\t%v\n", entry.Name, entry.Priority, entry.SIMDLevel)
	}
	w.Flush()
}

func generate(seed int64, n, npix int) (index []int, value []float64) {
	rng := rand.New(rand.NewSource(seed))
	index = make([]int, n)
	value = make([]float64, n)
	for i := range index {
		index[i] = rng.Intn(npix)
		value[i] = rng.NormFloat64()
	}
	return index, value
}

func timeKernel(entry registry.OpEntry, reference []float64, index []int, value []float64, npix, runs int) (time.Duration, error) {
	out := make([]float64, npix)

	// Correctness first: one untimed run compared against the reference.
	if pos := entry.ScatterAdd(out, index, value); pos != -1 {
		return 0, fmt.Errorf("%s rejected index at position %d", entry.Name, pos)
	}
	if err := compareDense(entry.Name, out, reference); err != nil {
		return 0, err
	}

	best := time.Duration(math.MaxInt64)
	for range runs {
		clear(out)
		start := time.Now()
		entry.ScatterAdd(out, index, value)
		if d := time.Since(start); d < best {
			best = d
		}
	}

	return best, nil
}

func timeGroupBy(reference []float64, index []int, value []float64, runs int) (time.Duration, error) {
	sums, err := binned.GroupSum(index, value)
	if err != nil {
		return 0, err
	}
	for k, want := range reference {
		if math.Abs(sums[k]-want) > 1e-10*math.Max(1, math.Abs(want)) {
			return 0, fmt.Errorf("group-by disagrees at bin %d: %v vs %v", k, sums[k], want)
		}
	}

	best := time.Duration(math.MaxInt64)
	for range runs {
		start := time.Now()
		if _, err := binned.GroupSum(index, value); err != nil {
			return 0, err
		}
		if d := time.Since(start); d < best {
			best = d
		}
	}

	return best, nil
}

func compareDense(name string, got, want []float64) error {
	for k := range want {
		if math.Abs(got[k]-want[k]) > 1e-10*math.Max(1, math.Abs(want[k])) {
			return fmt.Errorf("%s disagrees at bin %d: %v vs %v", name, k, got[k], want[k])
		}
	}
	return nil
}

func report(w *tabwriter.Writer, name string, best time.Duration, n int) {
	throughput := float64(n) / best.Seconds() / 1e6
	fmt.Fprintf(w, "%s\t%v\t%.1f Melem/s\n", name, best, throughput)
}
