package bubble

import (
	"image/color"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.MaxLineWidth != 170 || s.MinWidth != 50 || s.Padding != 10 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.LineHeight != 16 || s.TailHeight != 12 || s.StrokeWidth != 4 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	size := 30.0
	font := "go-mono"
	fill := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	merged := DefaultStyle().Merge(Patch{FontSize: &size, Font: &font, BubbleFill: &fill})
	if merged.FontSize != 30 || merged.Font != "go-mono" || merged.BubbleFill != fill {
		t.Fatalf("patch fields not applied: %+v", merged)
	}
	if merged.Padding != 10 || merged.LineHeight != 16 {
		t.Fatalf("unset fields must keep previous values: %+v", merged)
	}
}

func TestMergeEmptyPatchIsIdentity(t *testing.T) {
	base := DefaultStyle()
	if merged := base.Merge(Patch{}); merged != base {
		t.Fatalf("empty patch changed the style: %+v != %+v", merged, base)
	}
}
