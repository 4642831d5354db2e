package bubble

import (
	"image"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// rasterize draws the bubble at the given uniform scale and returns the
// pixel buffer. It always performs work when invoked; the texture-dirty
// check belongs to Texture. The layout is brought up to date first so the
// surface is sized for the current content.
func (s *TextBubbleSkin) rasterize(scale float64) *image.RGBA {
	s.reflow()
	st := s.style
	lay := s.layout

	// A fresh surface per rasterization doubles as resize + clear; stale
	// pixels from a previous pass cannot leak through.
	c := canvas.New(lay.Total.Width, lay.Total.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	half := st.StrokeWidth / 2
	paddedW := lay.TextArea.Width
	paddedH := lay.TextArea.Height

	// Body and tail form one compound path so fill and stroke cover the
	// whole silhouette in a single pass.
	p := canvas.RoundedRectangle(paddedW, paddedH, clampRadius(st.CornerRadius, paddedW, paddedH))
	p = p.Append(s.tailPath(paddedW, paddedH))
	if s.content.PointsLeft {
		// Mirror the silhouette about the padded width. The transform is
		// baked into the path, so stroke width and the text below are
		// unaffected.
		p = p.Transform(canvas.Identity.Translate(paddedW, 0).Scale(-1, 1))
	}
	ctx.SetFillColor(st.BubbleFill)
	ctx.SetStrokeColor(st.BubbleStroke)
	ctx.SetStrokeWidth(st.StrokeWidth)
	// Drawing at a half-stroke offset keeps the outline centered on the
	// bubble edge instead of clipped by the surface.
	ctx.DrawPath(half, half, p)

	for i, line := range lay.Lines {
		if line == "" {
			continue
		}
		baseline := half + st.Padding + st.LineHeight*float64(i) + st.FontHeightRatio*st.FontSize
		ctx.DrawText(half+st.Padding, baseline, canvas.NewTextLine(s.face, line, canvas.Left))
	}

	img := rasterizer.Draw(c, canvas.DPMM(scale), canvas.DefaultColorSpace)
	s.renderedScale = scale
	Logger().Debug("bubble rasterized",
		"scale", scale, "px", img.Bounds().Dx(), "py", img.Bounds().Dy(),
		"type", s.content.Type.String(), "mirrored", s.content.PointsLeft)
	return img
}

// tailPath builds the tail anchored at the bottom-right corner of the
// body, offset inward by the corner radius. Control points are expressed
// for the stock 12px tail and scaled with the style's tail height.
func (s *TextBubbleSkin) tailPath(paddedW, paddedH float64) *canvas.Path {
	st := s.style
	k := st.TailHeight / 12
	p := &canvas.Path{}
	if s.content.Type == Think {
		// A half-circle attached to the body plus two detached puffs
		// drifting toward the speaker. The puffs are separate closed
		// sub-paths, filled and stroked together with the body.
		p.MoveTo(-16*k, 0)
		p.Arc(4*k, 4*k, 0, 180, 0)
		p.Close()
		p = p.Append(canvas.Circle(2.25 * k).Translate(-7.25*k, 7.25*k))
		p = p.Append(canvas.Circle(1.5 * k).Translate(-9.75*k, 10*k))
	} else {
		// One swooping curve out to a rounded point and back.
		p.MoveTo(-16*k, 0)
		p.CubeTo(-12*k, 4*k, -7*k, 8*k, -2*k, 10*k)
		p.CubeTo(0.5*k, 11*k, 2.5*k, 12*k, 4*k, 12*k)
		p.CubeTo(3*k, 10*k, 2*k, 6*k, 4*k, 0)
		p.Close()
	}
	return p.Translate(paddedW-st.CornerRadius, paddedH)
}

// clampRadius keeps the corner radius drawable for degenerate styles.
func clampRadius(r, w, h float64) float64 {
	if r < 0 {
		return 0
	}
	if m := min(w, h) / 2; r > m {
		return m
	}
	return r
}
