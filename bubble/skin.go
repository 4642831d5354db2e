// Package bubble renders dynamically sized speech and thought bubbles as
// cached GPU textures. A TextBubbleSkin keeps its rasterized texture in
// sync with three independently changing inputs (text content, style,
// display scale) through two dirty flags: layout (wrapped lines and
// sizes) and texture (pixels). Both are recomputed lazily on read, so
// per-frame queries with unchanged inputs are cache hits.
package bubble

import (
	"math"

	"github.com/tdewolff/canvas"

	"github.com/kenzieshane/TurbowarpMobile/gpu"
	"github.com/kenzieshane/TurbowarpMobile/skin"
)

// MaxRenderScale caps the quantized render scale so a huge stage zoom
// cannot request an arbitrarily large texture.
const MaxRenderScale = 10

// Options configures a TextBubbleSkin at construction.
type Options struct {
	// Fonts are host-supplied TTFs by name, consulted before builtins.
	Fonts map[string][]byte
	// Wrapper overrides the line-wrapping strategy. Defaults to
	// NewGreedyWrapper.
	Wrapper skin.WrapperFactory
	// OnChange is invoked synchronously on every content or style
	// mutation, before the mutating call returns. It is not invoked on
	// lazy recomputation.
	OnChange func()
}

// TextBubbleSkin is a renderable bubble. It exclusively owns its GPU
// texture and offscreen drawing state; the GPU context is borrowed from
// the host renderer. Not safe for concurrent use: all operations are
// expected from a single control flow, typically the render loop.
type TextBubbleSkin struct {
	gpuCtx   gpu.Context
	fonts    *fontSet
	measurer *textMeasurer
	wrapper  skin.Wrapper
	onChange func()

	style   Style
	content Content
	face    *canvas.FontFace

	layoutDirty  bool
	textureDirty bool
	layout       Layout

	texture       gpu.Texture
	renderedScale float64
	disposed      bool
}

var _ skin.Skin = (*TextBubbleSkin)(nil)

// New creates an empty bubble with the default style, using ctx for
// texture resources. The skin starts fully dirty; nothing is rasterized
// until the first texture request.
func New(ctx gpu.Context, opts Options) *TextBubbleSkin {
	s := &TextBubbleSkin{
		gpuCtx:       ctx,
		fonts:        newFontSet(opts.Fonts),
		onChange:     opts.OnChange,
		style:        DefaultStyle(),
		layoutDirty:  true,
		textureDirty: true,
	}
	s.face = s.fonts.face(s.style.Font, s.style.FontSize, s.style.TextFill)
	s.measurer = newTextMeasurer(s.face)
	factory := opts.Wrapper
	if factory == nil {
		factory = NewGreedyWrapper
	}
	s.wrapper = factory(s.measurer)
	return s
}

// SetContent replaces the bubble's type, text and direction as one unit,
// invalidates layout and texture, and notifies the owner. The width memo
// is kept: the font did not change.
func (s *TextBubbleSkin) SetContent(t Type, text string, pointsLeft bool) {
	s.content = Content{Type: t, Text: text, PointsLeft: pointsLeft}
	s.layoutDirty = true
	s.textureDirty = true
	s.emitChange()
}

// Content returns the current content.
func (s *TextBubbleSkin) Content() Content { return s.content }

// ApplyStyle merges the patch over the current style (last write wins per
// field), re-resolves the font face, drops the measurement memo and
// invalidates layout and texture. The owner is notified unconditionally,
// even when the merged style equals the previous one. Patch values are
// not validated; malformed values yield degenerate but harmless output.
func (s *TextBubbleSkin) ApplyStyle(p Patch) {
	s.style = s.style.Merge(p)
	s.face = s.fonts.face(s.style.Font, s.style.FontSize, s.style.TextFill)
	s.measurer.setFace(s.face)
	s.layoutDirty = true
	s.textureDirty = true
	s.emitChange()
}

// Style returns the current merged style.
func (s *TextBubbleSkin) Style() Style { return s.style }

// Size returns the bubble's total logical footprint, reflowing first if a
// mutation occurred since the last layout. Repeated calls without
// intervening mutation are cache hits.
func (s *TextBubbleSkin) Size() skin.Size {
	s.reflow()
	return s.layout.Total
}

// Lines returns the wrapped display lines, reflowing if needed.
func (s *TextBubbleSkin) Lines() []string {
	s.reflow()
	lines := make([]string, len(s.layout.Lines))
	copy(lines, s.layout.Lines)
	return lines
}

// Layout returns the full derived layout, reflowing if needed.
func (s *TextBubbleSkin) Layout() Layout {
	s.reflow()
	lay := s.layout
	lay.Lines = make([]string, len(s.layout.Lines))
	copy(lay.Lines, s.layout.Lines)
	return lay
}

// Texture returns a texture of the bubble at the requested two-axis
// percentage scale (100 = 1:1; passing 0,0 means unspecified and defaults
// to 100). The request is quantized to one uniform scalar,
// min(MaxRenderScale, max(|x|,|y|)/100), which also serves as the cache
// key: the single retained texture is re-rasterized and re-uploaded only
// when the skin is texture-dirty or the quantized scale changed.
func (s *TextBubbleSkin) Texture(scaleX, scaleY float64) gpu.Texture {
	if scaleX == 0 && scaleY == 0 {
		scaleX, scaleY = 100, 100
	}
	requested := math.Max(math.Abs(scaleX), math.Abs(scaleY)) / 100
	if requested > MaxRenderScale {
		requested = MaxRenderScale
	}

	if s.textureDirty || s.texture == nil || requested != s.renderedScale {
		img := s.rasterize(requested)
		if s.texture == nil {
			s.texture = s.gpuCtx.NewTexture(gpu.TextureOptions{Wrap: gpu.ClampToEdge})
		}
		b := img.Bounds()
		s.texture.Upload(img.Pix, b.Dx(), b.Dy())
		s.textureDirty = false
		Logger().Debug("bubble texture uploaded",
			"width", b.Dx(), "height", b.Dy(), "scale", requested)
	}
	return s.texture
}

// Dispose releases the GPU texture and drops drawing state. Safe to call
// at most once; any use of the skin afterwards is undefined.
func (s *TextBubbleSkin) Dispose() {
	if s.texture != nil {
		s.texture.Release()
		s.texture = nil
	}
	s.face = nil
	s.disposed = true
}

// reflow recomputes the line layout if a mutation invalidated it.
func (s *TextBubbleSkin) reflow() {
	if !s.layoutDirty {
		return
	}
	lines := s.wrapper.Wrap(s.content.Text, s.style.MaxLineWidth)
	s.layout = computeLayout(s.style, lines, s.measurer)
	s.layoutDirty = false
	Logger().Debug("bubble reflowed",
		"lines", len(s.layout.Lines),
		"width", s.layout.Total.Width, "height", s.layout.Total.Height)
}

func (s *TextBubbleSkin) emitChange() {
	if s.onChange != nil {
		s.onChange()
	}
}
