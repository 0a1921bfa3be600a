// Package registry provides the implementation registry for scatter kernels.
//
// Kernel variants (naive, unrolled, future SIMD) register themselves via
// init() functions, and the scatter package uses the registry to select the
// best implementation at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// ScatterAddFn adds each value into out at its paired bin index, iterating
// positions in ascending order. It returns the position of the first index
// outside [0, len(out)), or -1 if all writes were applied. Writes before the
// offending position remain applied.
type ScatterAddFn func(out []float64, index []int, value []float64) int

// CountFn increments counts at each bin index, iterating positions in
// ascending order. Same return convention as [ScatterAddFn].
type CountFn func(counts []float64, index []int) int

// OpEntry is one registered scatter kernel implementation.
//
// Not all fields need to be populated - only implement the operations
// available for that variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g., "naive", "unrolled").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this
	// implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	Priority int

	// ScatterAdd performs the binning kernel: out[index[i]] += value[i].
	ScatterAdd ScatterAddFn

	// Count performs the occupancy kernel: counts[index[i]] += 1.
	Count CountFn

	// AddBlockInPlace performs element-wise addition: dst[i] += src[i].
	AddBlockInPlace func(dst, src []float64)

	// ScaleBlockInPlace performs element-wise scaling: dst[i] *= scalar.
	ScaleBlockInPlace func(dst []float64, scalar float64)
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default scatter kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
