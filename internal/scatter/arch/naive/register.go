package naive

import (
	"github.com/cwbudde/algo-binned/internal/scatter/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the naive (straight loop) implementations with the scatter
// registry. They serve as the baseline fallback and as the reference for
// bit-exact comparison against optimized variants.
//
// Priority: 0 (lowest - used only when no alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "naive",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		ScatterAdd: ScatterAdd,
		Count:      CountInto,

		AddBlockInPlace:   AddBlockInPlace,
		ScaleBlockInPlace: ScaleBlockInPlace,
	})
}
