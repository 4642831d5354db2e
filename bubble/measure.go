package bubble

import (
	"image/color"

	"github.com/tdewolff/canvas"

	"github.com/kenzieshane/TurbowarpMobile/fonts"
)

// The drawing surface sizes font faces in typographic points while the
// bubble works in logical pixels (the surface's drawing unit);
// fontPtPerUnit converts a style's font size into the face point size
// that renders at that pixel height.
const fontPtPerUnit = 1 / 0.352777

// lineWidther is the slice of a font face the measurer depends on.
type lineWidther interface {
	TextWidth(s string) float64
}

// textMeasurer memoizes line widths for the current face. The memo is
// dropped wholesale whenever the face changes; it is never repopulated
// incrementally across faces.
type textMeasurer struct {
	face lineWidther
	memo map[string]float64
}

func newTextMeasurer(face lineWidther) *textMeasurer {
	return &textMeasurer{face: face, memo: map[string]float64{}}
}

// Width implements skin.Measurer.
func (m *textMeasurer) Width(line string) float64 {
	if w, ok := m.memo[line]; ok {
		return w
	}
	w := m.face.TextWidth(line)
	m.memo[line] = w
	return w
}

// Invalidate implements skin.Measurer.
func (m *textMeasurer) Invalidate() {
	m.memo = map[string]float64{}
}

func (m *textMeasurer) setFace(face lineWidther) {
	m.face = face
	m.Invalidate()
}

// fontSet resolves style font names to canvas faces. Host-supplied fonts
// take precedence over builtins; unknown names fall back to the builtin
// default rather than failing, so a bad style stays renderable.
type fontSet struct {
	extra    map[string][]byte
	families map[string]*canvas.FontFamily
	fallback *canvas.FontFamily
}

func newFontSet(extra map[string][]byte) *fontSet {
	return &fontSet{
		extra:    extra,
		families: map[string]*canvas.FontFamily{},
	}
}

// face returns a face for the given font name at a size in logical pixels.
func (fs *fontSet) face(name string, sizePx float64, col color.RGBA) *canvas.FontFace {
	family := fs.family(name)
	return family.Face(sizePx*fontPtPerUnit, col, canvas.FontRegular, canvas.FontNormal)
}

func (fs *fontSet) family(name string) *canvas.FontFamily {
	if f, ok := fs.families[name]; ok {
		return f
	}
	f := fs.load(name)
	fs.families[name] = f
	return f
}

func (fs *fontSet) load(name string) *canvas.FontFamily {
	if data, ok := fs.extra[name]; ok {
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(data, 0, canvas.FontRegular); err == nil {
			return family
		}
		Logger().Warn("host font failed to load, using fallback", "font", name)
		return fs.defaultFamily()
	}
	if data, err := fonts.Load(name); err == nil {
		family := canvas.NewFontFamily(name)
		if err := family.LoadFont(data, 0, canvas.FontRegular); err == nil {
			return family
		}
	}
	return fs.defaultFamily()
}

func (fs *fontSet) defaultFamily() *canvas.FontFamily {
	if fs.fallback != nil {
		return fs.fallback
	}
	family := canvas.NewFontFamily(fonts.DefaultName)
	if err := family.LoadFont(fonts.Default(), 0, canvas.FontRegular); err != nil {
		// The default face is embedded and known-good; reaching this
		// means the font subsystem itself is broken.
		panic("bubble: builtin default font failed to load: " + err.Error())
	}
	fs.fallback = family
	return fs.fallback
}
