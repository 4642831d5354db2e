package bubble

import (
	"strings"
	"testing"
)

// fixedMeasurer gives every rune the same width so wrap tests are exact.
type fixedMeasurer struct {
	perRune float64
	calls   int
}

func (m *fixedMeasurer) Width(line string) float64 {
	m.calls++
	return m.perRune * float64(len([]rune(line)))
}

func (m *fixedMeasurer) Invalidate() {}

func TestGreedyWrapBreaksAtWhitespace(t *testing.T) {
	w := NewGreedyWrapper(&fixedMeasurer{perRune: 10})
	lines := w.Wrap("hello world again", 70)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	for i, line := range lines {
		if got := 10 * float64(len([]rune(line))); got > 70 {
			t.Fatalf("line %d exceeds limit: %q width=%g", i, line, got)
		}
	}
	joined := strings.Join(lines, "")
	if strings.ReplaceAll(joined, " ", "") != "helloworldagain" {
		t.Fatalf("wrapped lines lost content: %q", lines)
	}
}

func TestGreedyWrapHonorsNewlines(t *testing.T) {
	w := NewGreedyWrapper(&fixedMeasurer{perRune: 10})
	lines := w.Wrap("foo\n\nbar", 1000)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines including blank, got %d: %q", len(lines), lines)
	}
	if lines[0] != "foo" || lines[1] != "" || lines[2] != "bar" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

func TestGreedyWrapSplitsLongWords(t *testing.T) {
	w := NewGreedyWrapper(&fixedMeasurer{perRune: 10})
	lines := w.Wrap("aaaaaaaaaa", 35)
	if len(lines) < 3 {
		t.Fatalf("expected an over-long word to split, got %q", lines)
	}
	for i, line := range lines {
		if 10*float64(len([]rune(line))) > 35 {
			t.Fatalf("chunk %d exceeds limit: %q", i, line)
		}
	}
	if strings.Join(lines, "") != "aaaaaaaaaa" {
		t.Fatalf("split lost runes: %q", lines)
	}
}

func TestGreedyWrapEmptyText(t *testing.T) {
	w := NewGreedyWrapper(&fixedMeasurer{perRune: 10})
	lines := w.Wrap("", 100)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected a single empty line, got %q", lines)
	}
}

func TestGreedyWrapNonPositiveLimit(t *testing.T) {
	w := NewGreedyWrapper(&fixedMeasurer{perRune: 10})
	lines := w.Wrap("no wrapping happens here", 0)
	if len(lines) != 1 {
		t.Fatalf("non-positive limit must disable wrapping, got %q", lines)
	}
}
