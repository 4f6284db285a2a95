package stream

import (
	"math"
	"testing"
)

func TestFloat32NearEqual(t *testing.T) {
	tol := DefaultTolerance()

	cases := []struct {
		a, b float32
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + 1e-7, true},
		{1.0, 1.1, false},
		{0, 1e-8, true},
		{1e6, 1e6 * (1 + 1e-6), true},
		{float32(math.NaN()), float32(math.NaN()), true},
		{float32(math.Inf(1)), float32(math.Inf(1)), true},
		{float32(math.Inf(1)), float32(math.Inf(-1)), false},
		{float32(math.NaN()), 1.0, false},
	}

	for _, c := range cases {
		if got := Float32NearEqual(c.a, c.b, tol); got != c.want {
			t.Errorf("Float32NearEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFloat64NearEqual(t *testing.T) {
	tol := StrictTolerance()

	if !Float64NearEqual(15, 15, tol) {
		t.Error("exact values reported unequal")
	}
	if Float64NearEqual(15, 15.001, tol) {
		t.Error("strict tolerance accepted a large difference")
	}
	if !Float64NearEqual(1e10, 1e10*(1+1e-12), tol) {
		t.Error("relative tolerance rejected a tiny difference")
	}
}
