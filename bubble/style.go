package bubble

import "image/color"

// Style bundles every visual parameter of a bubble. Lengths are logical
// pixels (the unit the drawing surface works in); FontHeightRatio is the
// fraction of the font size between the line top and the baseline.
//
// A Style is a plain value: applying one replaces the previous value
// wholesale. Fields are not validated; malformed values produce degenerate
// but non-crashing geometry.
type Style struct {
	MaxLineWidth float64
	MinWidth     float64
	StrokeWidth  float64
	Padding      float64
	CornerRadius float64
	TailHeight   float64

	Font            string
	FontSize        float64
	FontHeightRatio float64
	LineHeight      float64

	BubbleFill   color.RGBA
	BubbleStroke color.RGBA
	TextFill     color.RGBA
}

// DefaultStyle returns the stock look of a speech bubble.
func DefaultStyle() Style {
	return Style{
		MaxLineWidth: 170,
		MinWidth:     50,
		StrokeWidth:  4,
		Padding:      10,
		CornerRadius: 16,
		TailHeight:   12,

		Font:            "Go",
		FontSize:        14,
		FontHeightRatio: 0.9,
		LineHeight:      16,

		BubbleFill:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BubbleStroke: color.RGBA{A: 38}, // black at 15% opacity
		TextFill:     color.RGBA{R: 0x57, G: 0x5E, B: 0x75, A: 255},
	}
}

// Patch is a partial style: nil fields keep the previous value. It is the
// unit of style configuration for both ApplyStyle and theme files.
type Patch struct {
	MaxLineWidth *float64
	MinWidth     *float64
	StrokeWidth  *float64
	Padding      *float64
	CornerRadius *float64
	TailHeight   *float64

	Font            *string
	FontSize        *float64
	FontHeightRatio *float64
	LineHeight      *float64

	BubbleFill   *color.RGBA
	BubbleStroke *color.RGBA
	TextFill     *color.RGBA
}

// Merge returns s with every non-nil patch field applied over it.
func (s Style) Merge(p Patch) Style {
	if p.MaxLineWidth != nil {
		s.MaxLineWidth = *p.MaxLineWidth
	}
	if p.MinWidth != nil {
		s.MinWidth = *p.MinWidth
	}
	if p.StrokeWidth != nil {
		s.StrokeWidth = *p.StrokeWidth
	}
	if p.Padding != nil {
		s.Padding = *p.Padding
	}
	if p.CornerRadius != nil {
		s.CornerRadius = *p.CornerRadius
	}
	if p.TailHeight != nil {
		s.TailHeight = *p.TailHeight
	}
	if p.Font != nil {
		s.Font = *p.Font
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.FontHeightRatio != nil {
		s.FontHeightRatio = *p.FontHeightRatio
	}
	if p.LineHeight != nil {
		s.LineHeight = *p.LineHeight
	}
	if p.BubbleFill != nil {
		s.BubbleFill = *p.BubbleFill
	}
	if p.BubbleStroke != nil {
		s.BubbleStroke = *p.BubbleStroke
	}
	if p.TextFill != nil {
		s.TextFill = *p.TextFill
	}
	return s
}
