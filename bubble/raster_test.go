package bubble

import (
	"bytes"
	"testing"

	"github.com/kenzieshane/TurbowarpMobile/gpu"
)

func renderPix(t *testing.T, typ Type, pointsLeft bool) []byte {
	t.Helper()
	s := New(gpu.NewSoftware(), Options{})
	s.SetContent(typ, "hello world", pointsLeft)
	tex := softwareTexture(t, s.Texture(100, 100))
	img := tex.Image()
	if img == nil || img.Bounds().Empty() {
		t.Fatalf("expected a non-empty rasterization")
	}
	return append([]byte(nil), img.Pix...)
}

func opaquePixels(pix []byte) int {
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRasterizeProducesPixels(t *testing.T) {
	pix := renderPix(t, Say, false)
	if opaquePixels(pix) == 0 {
		t.Fatalf("rasterization produced a fully transparent image")
	}
}

func TestSayAndThinkDiffer(t *testing.T) {
	say := renderPix(t, Say, false)
	think := renderPix(t, Think, false)
	if bytes.Equal(say, think) {
		t.Fatalf("say and think tails must produce different silhouettes")
	}
}

func TestMirroredBubbleDiffers(t *testing.T) {
	right := renderPix(t, Say, false)
	left := renderPix(t, Say, true)
	if len(right) != len(left) {
		t.Fatalf("mirroring must not change the footprint: %d vs %d bytes", len(right), len(left))
	}
	if bytes.Equal(right, left) {
		t.Fatalf("mirrored bubble must differ from the unmirrored one")
	}
}

func TestTextureCreationOptions(t *testing.T) {
	s := New(gpu.NewSoftware(), Options{})
	s.SetContent(Say, "opts", false)
	tex := softwareTexture(t, s.Texture(0, 0))
	opts := tex.Options()
	if opts.Wrap != gpu.ClampToEdge {
		t.Fatalf("bubble textures must clamp to edge")
	}
	if opts.Mipmaps {
		t.Fatalf("bubble textures must not be mipmapped")
	}
}
