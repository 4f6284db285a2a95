package stream

import "fmt"

// The four STREAM kernels. Each logical thread owns exactly one
// vector-unit index, computed from its block and thread identity the
// way the GPU kernels do, and performs fetch, a fixed amount of lane
// arithmetic, then store. No loops, no data-dependent branches, no
// cross-thread communication: total runtime is a direct proxy for
// achieved memory bandwidth.
//
// Semantics per unit index i:
//
//	Copy:  tgt[i] = src[i]
//	Scale: tgt[i] = src[i] * scalar
//	Add:   tgt[i] = srcA[i] + srcB[i]
//	Triad: tgt[i] = srcB[i] + srcA[i] * scalar
//
// The kernel constructors return the raw KernelFunc and assume the
// launch grid supplies exactly one thread per index; out-of-range
// indices are the caller's contract, not checked here. The Copy, Scale,
// Add and Triad wrappers below build that grid and validate buffer
// lengths once at the boundary.

// CopyKernel returns the kernel computing tgt[i] = src[i].
// Measures raw transfer bandwidth with zero arithmetic.
func CopyKernel[V Unit](tgt, src []V) KernelFunc {
	return func(tid ThreadID, _ ...interface{}) {
		i := tid.Global()
		Store(&tgt[i], Fetch(&src[i]))
	}
}

// ScaleKernel returns the kernel computing tgt[i] = src[i] * scalar,
// with the scalar broadcast to every lane.
func ScaleKernel[V Vector[V, E], E Scalar](tgt, src []V, scalar E) KernelFunc {
	return func(tid ThreadID, _ ...interface{}) {
		i := tid.Global()
		Store(&tgt[i], Fetch(&src[i]).Scaled(scalar))
	}
}

// AddKernel returns the kernel computing tgt[i] = srcA[i] + srcB[i].
func AddKernel[V Summand[V]](tgt, srcA, srcB []V) KernelFunc {
	return func(tid ThreadID, _ ...interface{}) {
		i := tid.Global()
		Store(&tgt[i], Fetch(&srcA[i]).Plus(Fetch(&srcB[i])))
	}
}

// TriadKernel returns the kernel computing tgt[i] = srcB[i] + srcA[i]*scalar,
// the classic STREAM triad: two reads, one write, one multiply-add per lane.
func TriadKernel[V Vector[V, E], E Scalar](tgt, srcA, srcB []V, scalar E) KernelFunc {
	return func(tid ThreadID, _ ...interface{}) {
		i := tid.Global()
		Store(&tgt[i], Fetch(&srcB[i]).AddScaled(Fetch(&srcA[i]), scalar))
	}
}

// Copy launches the copy kernel on the default stream, one thread per
// vector unit. Completion is observed with Synchronize.
func Copy[V Unit](tgt, src []V) error {
	grid, block, err := unitGrid("Copy", len(tgt), len(src))
	if err != nil {
		return err
	}
	return LaunchFunc(CopyKernel(tgt, src), grid, block)
}

// Scale launches the scale kernel on the default stream.
func Scale[V Vector[V, E], E Scalar](tgt, src []V, scalar E) error {
	grid, block, err := unitGrid("Scale", len(tgt), len(src))
	if err != nil {
		return err
	}
	return LaunchFunc(ScaleKernel(tgt, src, scalar), grid, block)
}

// Add launches the add kernel on the default stream.
func Add[V Summand[V]](tgt, srcA, srcB []V) error {
	grid, block, err := unitGrid("Add", len(tgt), len(srcA), len(srcB))
	if err != nil {
		return err
	}
	return LaunchFunc(AddKernel(tgt, srcA, srcB), grid, block)
}

// Triad launches the triad kernel on the default stream.
func Triad[V Vector[V, E], E Scalar](tgt, srcA, srcB []V, scalar E) error {
	grid, block, err := unitGrid("Triad", len(tgt), len(srcA), len(srcB))
	if err != nil {
		return err
	}
	return LaunchFunc(TriadKernel(tgt, srcA, srcB, scalar), grid, block)
}

// unitGrid builds the flat launch geometry: one thread per vector-unit
// index, DefaultBlockSize threads per block. All buffers must have the
// same length and the length must tile exactly into blocks.
func unitGrid(op string, n int, srcLens ...int) (Dim3, Dim3, error) {
	if n == 0 {
		return Dim3{}, Dim3{}, NewInvalidArgError(op, "empty target buffer")
	}
	for _, m := range srcLens {
		if m != n {
			return Dim3{}, Dim3{}, NewInvalidArgError(op,
				fmt.Sprintf("buffer length mismatch: target %d, source %d", n, m))
		}
	}
	block := DefaultBlockSize
	if n < block {
		block = n
	}
	if n%block != 0 {
		return Dim3{}, Dim3{}, NewInvalidArgError(op,
			fmt.Sprintf("buffer length %d does not tile into blocks of %d", n, block))
	}
	grid := Dim3{X: n / block, Y: 1, Z: 1}
	return grid, Dim3{X: block, Y: 1, Z: 1}, nil
}
