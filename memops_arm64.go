//go:build arm64 && !purego

package stream

import "unsafe"

// Explicit-move strategy for arm64. The 16-byte block copy lowers to a
// NEON 128-bit load/store pair; the noinline call boundary keeps the
// optimizer from caching or eliding the access.

func init() {
	accessBackend = "neon"
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
