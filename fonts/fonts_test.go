package fonts

import "testing"

func TestLoadBuiltinsAndAliases(t *testing.T) {
	for _, name := range []string{"Go", "go", "go-mono", "Helvetica", "sans", ""} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no data", name)
		}
	}
}

func TestLoadUnknownFont(t *testing.T) {
	if _, err := Load("comic-sans"); err == nil {
		t.Fatalf("expected an error for an unknown font")
	}
}

func TestDefault(t *testing.T) {
	if len(Default()) == 0 {
		t.Fatalf("default font must not be empty")
	}
}
