package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	dslPath := filepath.Join(dir, "themes.bubbletheme")
	if err := os.WriteFile(dslPath, []byte(`theme a { bubble { padding: 5 } }`), 0o644); err != nil {
		t.Fatalf("write dsl file: %v", err)
	}
	yamlPath := filepath.Join(dir, "themes.yaml")
	if err := os.WriteFile(yamlPath, []byte("themes:\n  a:\n    bubble:\n      padding: 5\n"), 0o644); err != nil {
		t.Fatalf("write yaml file: %v", err)
	}

	for _, path := range []string{dslPath, yamlPath} {
		themes, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", path, err)
		}
		p, ok := themes["a"]
		if !ok || p.Padding == nil || *p.Padding != 5 {
			t.Fatalf("Load(%s) produced wrong patch: %+v", path, p)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
