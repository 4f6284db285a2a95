package stream

import (
	"strings"
	"testing"
)

// The feature string must agree with the detected feature set.
func TestCPUInfoMatchesFeatures(t *testing.T) {
	f := GetCPUFeatures()
	info := GetCPUInfo()

	checks := []struct {
		has  bool
		name string
	}{
		{f.HasSSE2, "SSE2"},
		{f.HasSSE4, "SSE4"},
		{f.HasAVX, "AVX"},
		{f.HasAVX2, "AVX2"},
		{f.HasAVX512, "AVX512"},
		{f.HasFMA, "FMA"},
		{f.HasNEON, "NEON"},
	}

	found := false
	for _, c := range checks {
		if c.has {
			found = true
			if !strings.Contains(info, c.name) {
				t.Errorf("feature %s detected but missing from %q", c.name, info)
			}
		}
	}
	if !found && info != "scalar" {
		t.Errorf("no features detected but info is %q", info)
	}
}
