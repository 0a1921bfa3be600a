// Package scatter selects and dispatches the grouped-summation kernels.
//
// The heavy lifting lives in the arch subpackages; this package picks the
// best registered implementation for the current CPU once, on first use.
package scatter

import (
	"sync"

	"github.com/cwbudde/algo-binned/internal/scatter/registry"
	"github.com/cwbudde/algo-vecmath/cpu"

	// Kernel implementations register themselves via init().
	_ "github.com/cwbudde/algo-binned/internal/scatter/arch/naive"
	_ "github.com/cwbudde/algo-binned/internal/scatter/arch/unrolled"
)

var (
	selected *registry.OpEntry
	initOnce sync.Once
)

func initKernels() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("scatter: no kernel implementation registered")
	}
	if entry.ScatterAdd == nil || entry.Count == nil ||
		entry.AddBlockInPlace == nil || entry.ScaleBlockInPlace == nil {
		panic("scatter: selected implementation missing operations")
	}
	selected = entry
}

func lookup() *registry.OpEntry {
	initOnce.Do(initKernels)
	return selected
}

// ScatterAdd performs out[index[i]] += value[i] for ascending i.
// Returns the position of the first index outside [0, len(out)), or -1 when
// every write was applied. Writes before a failing position remain applied.
func ScatterAdd(out []float64, index []int, value []float64) int {
	return lookup().ScatterAdd(out, index, value)
}

// CountInto performs counts[index[i]] += 1 for ascending i.
// Same return convention as ScatterAdd.
func CountInto(counts []float64, index []int) int {
	return lookup().Count(counts, index)
}

// AddBlockInPlace performs dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	lookup().AddBlockInPlace(dst, src)
}

// ScaleBlockInPlace performs dst[i] *= scalar.
func ScaleBlockInPlace(dst []float64, scalar float64) {
	lookup().ScaleBlockInPlace(dst, scalar)
}

// SelectedName reports which kernel implementation dispatch resolved to.
// Intended for diagnostics and the benchmark harness.
func SelectedName() string {
	return lookup().Name
}
