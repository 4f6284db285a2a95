// Package stream configuration constants
package stream

// Thread and block dimensions
const (
	// DefaultBlockSize is the number of threads per block, matching the
	// launch geometry GPU STREAM implementations use.
	DefaultBlockSize = 256

	// MaxThreadsPerBlock caps block dimensions (GPU compatibility)
	MaxThreadsPerBlock = 1024
)

// Memory parameters
const (
	// MemoryAlignment is the alignment of pool allocations in bytes.
	// A cache line, which is a multiple of the 16-byte vector unit.
	MemoryAlignment = 64
)

// Benchmark defaults
const (
	// DefaultWarmupRuns is the number of untimed launches per kernel
	DefaultWarmupRuns = 20

	// DefaultTimedRuns is the number of timed launches per kernel
	DefaultTimedRuns = 100

	// DefaultBufferBytes is the per-buffer working set size
	DefaultBufferBytes = 256 * 1024 * 1024

	// DefaultScalar is the multiplier used by Scale and Triad
	DefaultScalar = 3.0
)
