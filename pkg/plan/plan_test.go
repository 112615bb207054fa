package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePlan(t, "clear: true\nclasses:\n  - cls1\n  - cls2\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !p.Clear {
		t.Error("expected clear to be true")
	}
	if len(p.Classes) != 2 || p.Classes[0] != "cls1" || p.Classes[1] != "cls2" {
		t.Errorf("unexpected classes: %v", p.Classes)
	}
}

func TestLoadClearOnly(t *testing.T) {
	path := writePlan(t, "clear: true\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(p.Classes) != 0 {
		t.Errorf("expected no classes, got %v", p.Classes)
	}
}

func TestLoadEmptyPlan(t *testing.T) {
	path := writePlan(t, "clear: false\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for plan with nothing to do")
	}
}

func TestLoadBadYaml(t *testing.T) {
	path := writePlan(t, "classes: [unclosed\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
