package stream

import "unsafe"

// The kernels move memory in 128-bit units so that every transaction
// carries as much data as a single vector load/store supports. The
// mapping from scalar precision to vector unit is fixed at compile time:
// float32 -> Float4, float64 -> Double2. Anything else is rejected by
// the type system, not at runtime.

// UnitBytes is the size of one vector unit in bytes.
const UnitBytes = 16

// Scalar enumerates the supported floating-point precisions.
type Scalar interface {
	float32 | float64
}

// Double2 is the vector unit for double precision: 2 x 64-bit lanes.
type Double2 struct {
	X, Y float64
}

// Float4 is the vector unit for single precision: 4 x 32-bit lanes.
type Float4 struct {
	X, Y, Z, W float32
}

// Both vector units must be exactly 128 bits wide.
var (
	_ [UnitBytes]byte = [unsafe.Sizeof(Double2{})]byte{}
	_ [UnitBytes]byte = [unsafe.Sizeof(Float4{})]byte{}
)

// Unit is the closed set of 128-bit vector-unit types. Using it as a
// type constraint makes any unsupported precision a compile-time error.
type Unit interface {
	Double2 | Float4
}

// Summand constrains a vector unit to one that supports lane-wise
// addition with its own type.
type Summand[V any] interface {
	Unit
	Plus(V) V
}

// Vector couples a vector unit with its scalar precision and the lane
// arithmetic the kernels need. Only the two pairings (Double2, float64)
// and (Float4, float32) satisfy it.
type Vector[V any, E Scalar] interface {
	Summand[V]
	Scaled(E) V
	AddScaled(V, E) V
}

// Lanes returns the number of scalar lanes in the unit.
func (Double2) Lanes() int { return 2 }

// Scaled returns the unit with every lane multiplied by k.
func (v Double2) Scaled(k float64) Double2 {
	return Double2{v.X * k, v.Y * k}
}

// Plus returns the lane-wise sum of v and o.
func (v Double2) Plus(o Double2) Double2 {
	return Double2{v.X + o.X, v.Y + o.Y}
}

// AddScaled returns v + a*k per lane, the triad operation.
func (v Double2) AddScaled(a Double2, k float64) Double2 {
	return Double2{v.X + a.X*k, v.Y + a.Y*k}
}

// Lanes returns the number of scalar lanes in the unit.
func (Float4) Lanes() int { return 4 }

// Scaled returns the unit with every lane multiplied by k.
func (v Float4) Scaled(k float32) Float4 {
	return Float4{v.X * k, v.Y * k, v.Z * k, v.W * k}
}

// Plus returns the lane-wise sum of v and o.
func (v Float4) Plus(o Float4) Float4 {
	return Float4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// AddScaled returns v + a*k per lane, the triad operation.
func (v Float4) AddScaled(a Float4, k float32) Float4 {
	return Float4{v.X + a.X*k, v.Y + a.Y*k, v.Z + a.Z*k, v.W + a.W*k}
}
