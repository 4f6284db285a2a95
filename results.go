package stream

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// KernelResult captures the aggregated outcome of one kernel's timed
// loops at one precision.
type KernelResult struct {
	Kernel       string `json:"kernel"`
	Precision    string `json:"precision"`
	BytesPerLoop int64  `json:"bytes_per_loop"`
	Loops        int    `json:"loops"`

	AvgSec float64 `json:"avg_sec"`
	MinSec float64 `json:"min_sec"`
	MaxSec float64 `json:"max_sec"`

	AvgGBps float64 `json:"avg_gbps"`
	MinGBps float64 `json:"min_gbps"`
	MaxGBps float64 `json:"max_gbps"`

	// CheckPassed is set only when data checking was requested
	CheckPassed *bool `json:"check_passed,omitempty"`
	CheckErrors int   `json:"check_errors,omitempty"`
}

// Result is the complete record of one benchmark run.
type Result struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Device   string `json:"device"`
	Cores    int    `json:"cores"`
	Backend  string `json:"backend"`
	Features string `json:"features"`

	Config  Config         `json:"config"`
	Kernels []KernelResult `json:"kernels"`
}

func newResult(cfg Config) *Result {
	dev := GetDevice()
	return &Result{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Device:    dev.Name,
		Cores:     dev.NumCores,
		Backend:   AccessBackend(),
		Features:  GetCPUInfo(),
		Config:    cfg,
	}
}

// JSON encodes the result for machine consumption.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteFile writes the JSON encoding to path.
func (r *Result) WriteFile(path string) error {
	data, err := r.JSON()
	if err != nil {
		return NewExecutionError("WriteFile", "encode result", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return NewExecutionError("WriteFile", "write result", err)
	}
	return nil
}

// Summary renders a STREAM-style table of per-kernel bandwidth.
func (r *Result) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "device: %s (%d cores, %s backend, %s)\n",
		r.Device, r.Cores, r.Backend, r.Features)
	fmt.Fprintf(&sb, "buffer: %d bytes, %d warm-up + %d timed loops\n\n",
		r.Config.Size, r.Config.NumWarmup, r.Config.NumLoops)

	fmt.Fprintf(&sb, "%-8s %-8s %14s %14s %14s %8s\n",
		"kernel", "prec", "best GB/s", "avg GB/s", "worst GB/s", "check")
	for _, k := range r.Kernels {
		check := "-"
		if k.CheckPassed != nil {
			if *k.CheckPassed {
				check = "ok"
			} else {
				check = fmt.Sprintf("%d bad", k.CheckErrors)
			}
		}
		fmt.Fprintf(&sb, "%-8s %-8s %14.2f %14.2f %14.2f %8s\n",
			k.Kernel, k.Precision, k.MaxGBps, k.AvgGBps, k.MinGBps, check)
	}

	return sb.String()
}
