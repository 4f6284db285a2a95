package stream

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Precision selects which compile-time kernel instantiation a benchmark
// run uses.
type Precision string

const (
	// PrecisionSingle runs the float32 kernels (Float4 units)
	PrecisionSingle Precision = "float"

	// PrecisionDouble runs the float64 kernels (Double2 units)
	PrecisionDouble Precision = "double"
)

// Config holds the benchmark parameters. The zero value is not usable
// directly; Run normalizes missing fields to the package defaults.
type Config struct {
	// Size is the working-set size of each of the three buffers in bytes.
	// Rounded down to a whole number of launch blocks.
	Size int64 `yaml:"size" json:"size"`

	// NumWarmup is the number of untimed launches per kernel
	NumWarmup int `yaml:"num_warm_up" json:"num_warm_up"`

	// NumLoops is the number of timed launches per kernel
	NumLoops int `yaml:"num_loops" json:"num_loops"`

	// Scalar is the multiplier used by the Scale and Triad kernels
	Scalar float64 `yaml:"scalar" json:"scalar"`

	// CheckData verifies buffer contents against the reference
	// computation after each kernel's loops
	CheckData bool `yaml:"check_data" json:"check_data"`

	// Precisions lists the precisions to run
	Precisions []Precision `yaml:"precisions" json:"precisions"`
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultBufferBytes,
		NumWarmup:  DefaultWarmupRuns,
		NumLoops:   DefaultTimedRuns,
		Scalar:     DefaultScalar,
		Precisions: []Precision{PrecisionSingle, PrecisionDouble},
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, NewConfigError("LoadConfig", err.Error())
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, NewConfigError("LoadConfig", fmt.Sprintf("parse %s: %v", path, err))
	}
	return cfg, nil
}

// normalize fills in defaults and rounds the buffer size so that the
// launch grid has exactly one thread per vector unit with no remainder.
func (c *Config) normalize() error {
	const chunk = int64(DefaultBlockSize * UnitBytes)

	if c.Size <= 0 {
		c.Size = DefaultBufferBytes
	}
	if c.Size < chunk {
		c.Size = chunk
	}
	c.Size -= c.Size % chunk

	if c.NumWarmup < 0 {
		return NewConfigError("normalize", fmt.Sprintf("negative warm-up count: %d", c.NumWarmup))
	}
	if c.NumLoops < 0 {
		return NewConfigError("normalize", fmt.Sprintf("negative loop count: %d", c.NumLoops))
	}
	if c.NumLoops == 0 {
		c.NumLoops = DefaultTimedRuns
	}
	if c.Scalar == 0 {
		c.Scalar = DefaultScalar
	}
	if len(c.Precisions) == 0 {
		c.Precisions = []Precision{PrecisionSingle, PrecisionDouble}
	}
	for _, p := range c.Precisions {
		if p != PrecisionSingle && p != PrecisionDouble {
			return NewConfigError("normalize", fmt.Sprintf("unsupported precision %q", p))
		}
	}
	return nil
}

// Run executes the full benchmark described by cfg: for each requested
// precision and each kernel, NumWarmup untimed launches followed by
// NumLoops timed launches, with bandwidth aggregated per kernel.
func Run(cfg Config) (*Result, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	res := newResult(cfg)

	for _, p := range cfg.Precisions {
		var (
			kr  []KernelResult
			err error
		)
		switch p {
		case PrecisionSingle:
			kr, err = runPrecision[Float4, float32](cfg, p)
		case PrecisionDouble:
			kr, err = runPrecision[Double2, float64](cfg, p)
		}
		if err != nil {
			return nil, err
		}
		res.Kernels = append(res.Kernels, kr...)
	}

	return res, nil
}

// runPrecision drives the four kernels for one precision. Buffers are
// allocated once and reused across every launch; the kernels run in the
// classic STREAM order (c=a, b=k*c, c=a+b, a=b+k*c) so each phase reads
// values an earlier phase produced.
func runPrecision[V Vector[V, E], E Scalar](cfg Config, prec Precision) ([]KernelResult, error) {
	size := int(cfg.Size)

	bufA, err := Malloc(size)
	if err != nil {
		return nil, err
	}
	defer Free(bufA)
	bufB, err := Malloc(size)
	if err != nil {
		return nil, err
	}
	defer Free(bufB)
	bufC, err := Malloc(size)
	if err != nil {
		return nil, err
	}
	defer Free(bufC)

	a := Units[V](bufA)
	b := Units[V](bufB)
	c := Units[V](bufC)

	sa := Scalars[E](bufA)
	sb := Scalars[E](bufB)
	sc := Scalars[E](bufC)

	for i := range sa {
		sa[i] = 1
		sb[i] = 2
		sc[i] = 0
	}

	k := E(cfg.Scalar)

	tol := StrictTolerance()
	if prec == PrecisionSingle {
		tol = DefaultTolerance()
	}
	expA, expB, expC := expectedValues(cfg.Scalar)

	phases := []struct {
		name  string
		bytes int64 // moved per launch: reads + writes
		run   func() error
		check func() int
	}{
		{
			name:  "copy",
			bytes: 2 * cfg.Size,
			run:   func() error { return Copy(c, a) },
			check: func() int { return verifyUniform(sc, 1, tol) },
		},
		{
			name:  "scale",
			bytes: 2 * cfg.Size,
			run:   func() error { return Scale(b, c, k) },
			check: func() int { return verifyUniform(sb, expB, tol) },
		},
		{
			name:  "add",
			bytes: 3 * cfg.Size,
			run:   func() error { return Add(c, a, b) },
			check: func() int { return verifyUniform(sc, expC, tol) },
		},
		{
			name:  "triad",
			bytes: 3 * cfg.Size,
			run:   func() error { return Triad(a, c, b, k) },
			check: func() int { return verifyUniform(sa, expA, tol) },
		},
	}

	results := make([]KernelResult, 0, len(phases))
	for _, ph := range phases {
		for w := 0; w < cfg.NumWarmup; w++ {
			if err := launchAndWait(ph.name, ph.run); err != nil {
				return nil, err
			}
		}

		times := make([]float64, cfg.NumLoops)
		for l := 0; l < cfg.NumLoops; l++ {
			start := time.Now()
			if err := launchAndWait(ph.name, ph.run); err != nil {
				return nil, err
			}
			times[l] = time.Since(start).Seconds()
		}

		kr := summarize(ph.name, prec, ph.bytes, times)
		if cfg.CheckData {
			bad := ph.check()
			ok := bad == 0
			kr.CheckPassed = &ok
			kr.CheckErrors = bad
		}
		results = append(results, kr)
	}

	return results, nil
}

func launchAndWait(op string, run func() error) error {
	if err := run(); err != nil {
		return err
	}
	if err := Synchronize(); err != nil {
		return NewExecutionError(op, "synchronize failed", err)
	}
	return nil
}

// summarize reduces per-loop wall times to bandwidth statistics.
func summarize(kernel string, prec Precision, bytes int64, times []float64) KernelResult {
	kr := KernelResult{
		Kernel:       kernel,
		Precision:    string(prec),
		BytesPerLoop: bytes,
		Loops:        len(times),
	}

	minT, maxT, sum := times[0], times[0], 0.0
	for _, t := range times {
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
		sum += t
	}
	avgT := sum / float64(len(times))

	gbps := func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		return float64(bytes) / t / 1e9
	}

	kr.AvgSec = avgT
	kr.MinSec = minT
	kr.MaxSec = maxT
	// Best bandwidth comes from the fastest loop.
	kr.MaxGBps = gbps(minT)
	kr.MinGBps = gbps(maxT)
	kr.AvgGBps = gbps(avgT)
	return kr
}
