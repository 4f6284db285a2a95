// Package stream measures achievable memory bandwidth with the four
// canonical STREAM kernels: Copy, Scale, Add and Triad.
//
// The package keeps the shape of a GPU benchmark: device buffers are
// allocated from an aligned pool, a kernel is launched over a flat grid
// with one logical thread per 128-bit vector unit, and completion is
// awaited with Synchronize. On the host the grid is executed by a
// goroutine worker pool, and the vendor-specific load/store backends of
// the GPU original become build-tag selected memory-access strategies.
//
// Example usage:
//
//	d_src, _ := stream.Malloc(n * stream.UnitBytes)
//	d_tgt, _ := stream.Malloc(n * stream.UnitBytes)
//	defer stream.Free(d_src)
//	defer stream.Free(d_tgt)
//
//	src := stream.Units[stream.Float4](d_src)
//	tgt := stream.Units[stream.Float4](d_tgt)
//
//	stream.Scale(tgt, src, float32(3.0))
//	stream.Synchronize()
//
// The higher-level Run entry point drives the full benchmark: warm-up
// and timed loops per kernel, bandwidth aggregation and optional data
// checking.
package stream
