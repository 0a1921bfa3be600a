package unrolled

import (
	"github.com/cwbudde/algo-binned/internal/scatter/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the unrolled implementations with the scatter registry.
//
// Scatter-add is memory-bound with data-dependent write conflicts, so there
// is no profitable SIMD variant; unrolling with hoisted bounds is the
// portable optimization. SIMDLevel stays SIMDNone so the entry is eligible
// on every architecture.
//
// Priority: 10 (preferred over naive when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		ScatterAdd: ScatterAdd,
		Count:      CountInto,

		AddBlockInPlace:   AddBlockInPlace,
		ScaleBlockInPlace: ScaleBlockInPlace,
	})
}
