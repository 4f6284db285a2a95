package stream

// Data checking for the benchmark harness. Since every buffer starts
// with a uniform lane value and the kernels are elementwise, the
// reference computation collapses to one scalar evaluation per phase;
// the read-back still goes lane by lane through the uncached scalar
// fetch so a single contaminated index cannot hide.

// expectedValues evaluates the reference STREAM cycle on uniform
// buffers (a=1, b=2, c=0) and returns the lane values each buffer holds
// once all four kernels have run.
func expectedValues(scalar float64) (a, b, c float64) {
	a, b, c = 1, 2, 0
	c = a
	b = scalar * c
	c = a + b
	a = b + scalar*c
	return a, b, c
}

// verifyUniform counts lanes of data that differ from want beyond the
// tolerance. want is given in float64 and converted to the buffer's
// precision before comparing.
func verifyUniform[E Scalar](data []E, want float64, tol ToleranceConfig) int {
	w := E(want)
	bad := 0
	for i := range data {
		if !scalarNearEqual(FetchScalar(&data[i]), w, tol) {
			bad++
		}
	}
	return bad
}

func scalarNearEqual[E Scalar](a, b E, tol ToleranceConfig) bool {
	switch x := any(a).(type) {
	case float32:
		return Float32NearEqual(x, any(b).(float32), tol)
	case float64:
		return Float64NearEqual(x, any(b).(float64), tol)
	}
	return false
}
