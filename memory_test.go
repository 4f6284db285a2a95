package stream

import (
	"math/rand"
	"testing"
	"unsafe"
)

func TestMemoryAllocation(t *testing.T) {
	sizes := []int{100, 1000, 10000, 1000000}

	for _, size := range sizes {
		ptr, err := Malloc(size * 4)
		if err != nil {
			t.Fatalf("Failed to allocate %d bytes: %v", size*4, err)
		}

		slice := ptr.Float32()
		if len(slice) != size {
			t.Errorf("Expected slice length %d, got %d", size, len(slice))
		}

		for i := 0; i < min(100, size); i++ {
			slice[i] = float32(i)
		}
		for i := 0; i < min(100, size); i++ {
			if slice[i] != float32(i) {
				t.Errorf("Memory corruption at index %d", i)
			}
		}

		if err := Free(ptr); err != nil {
			t.Fatalf("Failed to free memory: %v", err)
		}
	}
}

// Every buffer the pool hands out must satisfy the 128-bit alignment
// the vector kernels rely on.
func TestAllocationAlignment(t *testing.T) {
	for _, size := range []int{16, 64, 4096, 1 << 20} {
		ptr, err := Malloc(size)
		if err != nil {
			t.Fatalf("Malloc(%d): %v", size, err)
		}
		addr := uintptr(ptr.ptr)
		if addr%UnitBytes != 0 {
			t.Errorf("size %d: address %#x not 128-bit aligned", size, addr)
		}
		if addr%MemoryAlignment != 0 {
			t.Errorf("size %d: address %#x not %d-byte aligned", size, addr, MemoryAlignment)
		}
		Free(ptr)
	}
}

func TestMemcpy(t *testing.T) {
	const N = 1000

	h_src := make([]float32, N)
	h_dst := make([]float32, N)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < N; i++ {
		h_src[i] = rng.Float32()
	}

	d_src, _ := Malloc(N * 4)
	d_dst, _ := Malloc(N * 4)
	defer Free(d_src)
	defer Free(d_dst)

	if err := Memcpy(d_src, h_src, N*4, MemcpyHostToDevice); err != nil {
		t.Fatalf("H2D copy failed: %v", err)
	}
	if err := Memcpy(d_dst, d_src, N*4, MemcpyDeviceToDevice); err != nil {
		t.Fatalf("D2D copy failed: %v", err)
	}
	if err := Memcpy(h_dst, d_dst, N*4, MemcpyDeviceToHost); err != nil {
		t.Fatalf("D2H copy failed: %v", err)
	}

	for i := 0; i < N; i++ {
		if h_dst[i] != h_src[i] {
			t.Fatalf("roundtrip mismatch at %d: got %v, want %v", i, h_dst[i], h_src[i])
		}
	}
}

func TestDoubleFree(t *testing.T) {
	ptr, err := Malloc(1024)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	if err := Free(ptr); err != nil {
		t.Fatalf("first Free: %v", err)
	}
	if err := Free(ptr); err != ErrDoubleFree {
		t.Errorf("second Free: got %v, want ErrDoubleFree", err)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := NewMemoryPool()

	a, err := pool.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	first := uintptr(a.ptr)
	if err := pool.Free(a); err != nil {
		t.Fatalf("Free: %v", err)
	}

	b, err := pool.Allocate(4096)
	if err != nil {
		t.Fatalf("Allocate after free: %v", err)
	}
	if uintptr(b.ptr) != first {
		t.Errorf("pool did not reuse freed block: %#x vs %#x", uintptr(b.ptr), first)
	}

	allocated, peak := pool.GetStats()
	if allocated <= 0 || peak <= 0 {
		t.Errorf("stats: allocated=%d peak=%d", allocated, peak)
	}
}

func TestScalarsAndUnitsViews(t *testing.T) {
	const n = 256
	d, err := Malloc(n * UnitBytes)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	defer Free(d)

	units := Units[Float4](d)
	lanes := Scalars[float32](d)
	if len(units) != n {
		t.Fatalf("units view: %d, want %d", len(units), n)
	}
	if len(lanes) != n*4 {
		t.Fatalf("lanes view: %d, want %d", len(lanes), n*4)
	}

	// Both views alias the same memory.
	units[3] = Float4{1, 2, 3, 4}
	if lanes[12] != 1 || lanes[15] != 4 {
		t.Errorf("views do not alias: %v", lanes[12:16])
	}
	if unsafe.Pointer(&units[0]) != unsafe.Pointer(&lanes[0]) {
		t.Error("views have different base addresses")
	}

	raw := d.Byte()
	if len(raw) != n*UnitBytes {
		t.Fatalf("byte view: %d, want %d", len(raw), n*UnitBytes)
	}
	raw[0] = 0xff
	if lanes[0] == 0 {
		t.Error("byte view does not alias the lane view")
	}
}

func TestDevicePtrOffset(t *testing.T) {
	const n = 64
	d, err := Malloc(n * UnitBytes)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	defer Free(d)

	units := Units[Float4](d)
	clear(units)

	half := d.Offset(n / 2 * UnitBytes)
	if half.Size() != n/2*UnitBytes {
		t.Fatalf("offset size = %d, want %d", half.Size(), n/2*UnitBytes)
	}

	// Writes through the sub-region land in the tail of the base view.
	tail := Units[Float4](half)
	tail[0] = Float4{9, 9, 9, 9}
	if units[n/2] != (Float4{9, 9, 9, 9}) {
		t.Errorf("offset view does not alias the base: %v", units[n/2])
	}
	if units[n/2-1] != (Float4{}) {
		t.Errorf("offset write leaked backwards: %v", units[n/2-1])
	}
}
