package achievement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func writePolicy(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPolicy_Empty(t *testing.T) {
	got, err := LoadPolicy("", zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	if diff := cmp.Diff(DefaultPolicy(), got); diff != "" {
		t.Errorf("policy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPolicy_Overrides(t *testing.T) {
	path := writePolicy(t, `
economic:
  fast_win_max_seconds: 540
multi_race:
  balanced_ratio: 0.4
`)
	got, err := LoadPolicy(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadPolicy: %v", err)
	}
	want := DefaultPolicy()
	want.Economic.FastWinMaxSeconds = 540
	want.MultiRace.BalancedRatio = 0.4
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("policy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPolicy_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"bad yaml", writePolicy(t, "economic: [")},
		{"contradicting thresholds", writePolicy(t, "streak:\n  hot_min: 6\n  legendary_min: 5\n")},
		{"ratio out of range", writePolicy(t, "multi_race:\n  balanced_ratio: 1.5\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPolicy(tt.path, zerolog.Nop()); err == nil {
				t.Error("LoadPolicy returned no error")
			}
		})
	}
}
