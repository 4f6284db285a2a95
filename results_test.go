package stream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func smallResult(t *testing.T) *Result {
	t.Helper()
	cfg := smallConfig()
	cfg.Precisions = []Precision{PrecisionSingle}
	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestResultJSON(t *testing.T) {
	res := smallResult(t)

	data, err := res.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != res.ID {
		t.Errorf("ID roundtrip: %q vs %q", decoded.ID, res.ID)
	}
	if len(decoded.Kernels) != len(res.Kernels) {
		t.Errorf("kernel count roundtrip: %d vs %d", len(decoded.Kernels), len(res.Kernels))
	}
	if decoded.Config.Size != res.Config.Size {
		t.Errorf("config size roundtrip: %d vs %d", decoded.Config.Size, res.Config.Size)
	}
}

func TestResultSummary(t *testing.T) {
	res := smallResult(t)
	sum := res.Summary()

	for _, kernel := range []string{"copy", "scale", "add", "triad"} {
		if !strings.Contains(sum, kernel) {
			t.Errorf("summary missing kernel %q:\n%s", kernel, sum)
		}
	}
	if !strings.Contains(sum, res.Backend) {
		t.Errorf("summary missing backend %q", res.Backend)
	}
	if !strings.Contains(sum, "ok") {
		t.Errorf("summary missing check column:\n%s", sum)
	}
}

func TestResultWriteFile(t *testing.T) {
	res := smallResult(t)
	path := filepath.Join(t.TempDir(), "result.json")

	if err := res.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode written file: %v", err)
	}
	if decoded.ID != res.ID {
		t.Errorf("written ID %q, want %q", decoded.ID, res.ID)
	}
}
