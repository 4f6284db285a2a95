package stream

import (
	"math"
	"testing"
)

func TestFetchStoreRoundtripFloat4(t *testing.T) {
	buf := allocUnits[Float4](t, DefaultBlockSize)

	want := Float4{1.5, -2.25, 3.125, -4.0625}
	Store(&buf[7], want)
	got := Fetch(&buf[7])
	if got != want {
		t.Fatalf("roundtrip: got %v, want %v", got, want)
	}

	// Neighbors must be untouched.
	if buf[6] != (Float4{}) || buf[8] != (Float4{}) {
		t.Fatalf("store leaked into neighbors: %v %v", buf[6], buf[8])
	}
}

func TestFetchStoreRoundtripDouble2(t *testing.T) {
	buf := allocUnits[Double2](t, DefaultBlockSize)

	want := Double2{math.Pi, -math.E}
	Store(&buf[0], want)
	got := Fetch(&buf[0])
	if math.Float64bits(got.X) != math.Float64bits(want.X) ||
		math.Float64bits(got.Y) != math.Float64bits(want.Y) {
		t.Fatalf("roundtrip: got %v, want %v", got, want)
	}
}

func TestFetchStoreScalar(t *testing.T) {
	d, err := Malloc(DefaultBlockSize * UnitBytes)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	defer Free(d)

	f32 := Scalars[float32](d)
	StoreScalar(&f32[3], float32(42.5))
	if got := FetchScalar(&f32[3]); got != 42.5 {
		t.Errorf("float32 roundtrip: got %v", got)
	}

	f64 := Scalars[float64](d)
	StoreScalar(&f64[9], math.MaxFloat64)
	if got := FetchScalar(&f64[9]); got != math.MaxFloat64 {
		t.Errorf("float64 roundtrip: got %v", got)
	}
}

func TestFetchReadsThroughWrites(t *testing.T) {
	buf := allocUnits[Float4](t, DefaultBlockSize)

	// Interleaved fetch/store program order must be preserved: each
	// fetch observes the store that preceded it.
	for i := 0; i < 64; i++ {
		v := Float4{float32(i), float32(i + 1), float32(i + 2), float32(i + 3)}
		Store(&buf[i%4], v)
		if got := Fetch(&buf[i%4]); got != v {
			t.Fatalf("iteration %d: got %v, want %v", i, got, v)
		}
	}
}

func TestAccessBackendNamed(t *testing.T) {
	if AccessBackend() == "" {
		t.Fatal("access backend not initialized")
	}
}
