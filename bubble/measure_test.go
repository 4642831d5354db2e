package bubble

import "testing"

type countingFace struct {
	calls int
}

func (f *countingFace) TextWidth(s string) float64 {
	f.calls++
	return float64(len(s))
}

func TestTextMeasurerMemoizes(t *testing.T) {
	face := &countingFace{}
	m := newTextMeasurer(face)

	if w := m.Width("hello"); w != 5 {
		t.Fatalf("unexpected width: %g", w)
	}
	if w := m.Width("hello"); w != 5 {
		t.Fatalf("unexpected cached width: %g", w)
	}
	if face.calls != 1 {
		t.Fatalf("expected a single face query, got %d", face.calls)
	}
}

func TestTextMeasurerInvalidate(t *testing.T) {
	face := &countingFace{}
	m := newTextMeasurer(face)
	m.Width("hello")
	m.Invalidate()
	m.Width("hello")
	if face.calls != 2 {
		t.Fatalf("invalidate must drop the memo, got %d face queries", face.calls)
	}
}

func TestTextMeasurerSetFaceDropsMemo(t *testing.T) {
	first := &countingFace{}
	second := &countingFace{}
	m := newTextMeasurer(first)
	m.Width("hello")
	m.setFace(second)
	m.Width("hello")
	if second.calls != 1 {
		t.Fatalf("expected the new face to be queried, got %d", second.calls)
	}
}
