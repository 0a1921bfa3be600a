// Package binned accumulates scalar measurements into fixed-size bins
// identified by an integer index array (scatter-add binning).
//
// The core operation is [Accumulate]: given paired index and value arrays of
// length N and an output buffer of length NPIX, it adds each value into the
// bin slot named by its index. Iteration runs in strictly ascending position
// order, so results are bit-reproducible across kernel variants and across
// reruns with identical inputs.
//
// Companions cover the usual map-making workflow: [Counts] for bin
// occupancy, [Means] for per-bin averages, [Merge] for co-adding two
// accumulator buffers, and [GroupSum] as a map-based reference aggregator.
//
// Kernel selection happens at runtime through a registry of implementation
// variants; see internal/scatter. The cmd/binbench command compares the
// registered variants head to head.
package binned
