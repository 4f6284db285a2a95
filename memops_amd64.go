//go:build amd64 && !purego

package stream

import "unsafe"

// Explicit-move strategy. The accesses are spelled out as word moves
// through unsafe pointers inside noinline functions: the 16-byte block
// copy lowers to a single 128-bit MOVUPS pair on amd64, and the call
// boundary keeps the optimizer from caching or eliding the access.

func init() {
	accessBackend = "sse2"
}

//go:noinline
func fetch128(p, v unsafe.Pointer) {
	src := (*[2]uint64)(p)
	dst := (*[2]uint64)(v)
	dst[0] = src[0]
	dst[1] = src[1]
}

//go:noinline
func store128(p, v unsafe.Pointer) {
	src := (*[2]uint64)(v)
	dst := (*[2]uint64)(p)
	dst[0] = src[0]
	dst[1] = src[1]
}

//go:noinline
func fetch64(p unsafe.Pointer) uint64 {
	return *(*uint64)(p)
}

//go:noinline
func fetch32(p unsafe.Pointer) uint32 {
	return *(*uint32)(p)
}

//go:noinline
func store64(p unsafe.Pointer, v uint64) {
	*(*uint64)(p) = v
}

//go:noinline
func store32(p unsafe.Pointer, v uint32) {
	*(*uint32)(p) = v
}
