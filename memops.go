package stream

import "unsafe"

// Fetch and Store are the only way kernels touch global memory. Each
// call moves exactly one 128-bit vector unit through a non-inlinable
// access function, so the compiler cannot promote the value to a
// register across launches, drop the access, or reorder it relative to
// adjacent fetches and stores in the same logical thread. That is the
// contract the bandwidth measurement depends on; the original GPU
// implementations realize it with ld.volatile/st.volatile instructions
// on one backend and native volatile semantics on the other, and the
// same split exists here as build-tag selected strategies (see
// memops_amd64.go, memops_arm64.go, memops_purego.go).
//
// The pattern follows the NCCL/RCCL device-kernel fetch/store helpers.

// Fetch reads one vector unit from src.
func Fetch[V Unit](src *V) V {
	var v V
	fetch128(unsafe.Pointer(src), unsafe.Pointer(&v))
	return v
}

// Store writes one vector unit to dst.
func Store[V Unit](dst *V, v V) {
	store128(unsafe.Pointer(dst), unsafe.Pointer(&v))
}

// FetchScalar reads one lane from src with the same no-elision
// guarantee as Fetch. The access width follows the precision: 32-bit
// for float32, 64-bit for float64.
func FetchScalar[E Scalar](src *E) E {
	var v E
	switch unsafe.Sizeof(v) {
	case 8:
		*(*uint64)(unsafe.Pointer(&v)) = fetch64(unsafe.Pointer(src))
	default:
		*(*uint32)(unsafe.Pointer(&v)) = fetch32(unsafe.Pointer(src))
	}
	return v
}

// StoreScalar writes one lane to dst, symmetric to FetchScalar.
func StoreScalar[E Scalar](dst *E, v E) {
	switch unsafe.Sizeof(v) {
	case 8:
		store64(unsafe.Pointer(dst), *(*uint64)(unsafe.Pointer(&v)))
	default:
		store32(unsafe.Pointer(dst), *(*uint32)(unsafe.Pointer(&v)))
	}
}

// accessBackend names the memory-access strategy compiled into this
// binary. Set by init in the per-arch memops files.
var accessBackend string

// AccessBackend returns the name of the active memory-access strategy,
// for example "sse2", "neon" or "portable".
func AccessBackend() string {
	return accessBackend
}
