package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mehrdad93/baybe/internal/domain/target"
)

func writeTargetsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write targets file: %v", err)
	}
	return path
}

func TestLoadTargets(t *testing.T) {
	path := writeTargetsFile(t, `
targets:
  - name: Yield
    mode: MAX
    lower: 0
    upper: 100
  - name: Cost
    mode: MIN
  - name: pH
    mode: MATCH
    lower: 5
    upper: 9
    transform: BELL
`)

	targets, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("LoadTargets: %v", err)
	}
	if len(targets) != 3 {
		t.Fatalf("len(targets) = %d, want 3", len(targets))
	}
	if targets[0].Name() != "Yield" || targets[0].Mode() != target.Max {
		t.Errorf("targets[0] = %s %s", targets[0].Name(), targets[0].Mode())
	}
	if targets[1].Bounds().IsClosed() {
		t.Error("Cost should be unbounded")
	}
	if targets[2].TransformMode() != target.Bell {
		t.Errorf("pH transform = %q, want BELL", targets[2].TransformMode())
	}
}

func TestLoadTargetsErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty list", "targets: []"},
		{"match without bounds", "targets:\n  - name: pH\n    mode: MATCH"},
		{"one-sided bounds", "targets:\n  - name: Yield\n    mode: MAX\n    lower: 0"},
		{"bad mode", "targets:\n  - name: Yield\n    mode: UP"},
		{"bad transform", "targets:\n  - name: Yield\n    mode: MAX\n    lower: 0\n    upper: 1\n    transform: BELL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTargetsFile(t, tc.content)
			if _, err := LoadTargets(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := LoadTargets(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
