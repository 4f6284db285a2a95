//go:build (!amd64 && !arm64) || purego

package stream

import "unsafe"

// Direct-dereference strategy: rely on the language's own load/store
// semantics and copy the unit as an opaque 16-byte block. Observably
// identical to the explicit-move strategy; used on architectures
// without a tuned path and under the purego tag.

func init() {
	accessBackend = "portable"
}

//go:noinline
func fetch128(p, v unsafe.Pointer) {
	*(*[UnitBytes]byte)(v) = *(*[UnitBytes]byte)(p)
}

//go:noinline
func store128(p, v unsafe.Pointer) {
	*(*[UnitBytes]byte)(p) = *(*[UnitBytes]byte)(v)
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
