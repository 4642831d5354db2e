package theme

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/tdewolff/canvas"

	"github.com/kenzieshane/TurbowarpMobile/bubble"
)

// applyEntry writes one scalar theme entry into a patch. It is shared by
// the DSL and YAML front ends, so both accept identical keys and values.
func applyEntry(p *bubble.Patch, section, key, value string) error {
	switch section {
	case "bubble":
		switch key {
		case "fill":
			return setColor(&p.BubbleFill, value)
		case "stroke":
			return setColor(&p.BubbleStroke, value)
		case "stroke-width":
			return setLength(&p.StrokeWidth, value)
		case "padding":
			return setLength(&p.Padding, value)
		case "corner-radius":
			return setLength(&p.CornerRadius, value)
		case "tail-height":
			return setLength(&p.TailHeight, value)
		case "max-line-width":
			return setLength(&p.MaxLineWidth, value)
		case "min-width":
			return setLength(&p.MinWidth, value)
		}
	case "text":
		switch key {
		case "font":
			font := value
			p.Font = &font
			return nil
		case "size":
			return setLength(&p.FontSize, value)
		case "height-ratio":
			return setRatio(&p.FontHeightRatio, value)
		case "line-height":
			return setLength(&p.LineHeight, value)
		case "fill":
			return setColor(&p.TextFill, value)
		}
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return fmt.Errorf("unknown %s key %q", section, key)
}

func setLength(dst **float64, value string) error {
	l, err := ParseLength(value)
	if err != nil {
		return err
	}
	px := l.Px()
	*dst = &px
	return nil
}

func setRatio(dst **float64, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid ratio %q: %w", value, err)
	}
	*dst = &f
	return nil
}

func setColor(dst **color.RGBA, value string) error {
	if len(value) == 0 || value[0] != '#' {
		return fmt.Errorf("invalid color %q (expected #RGB, #RRGGBB or #RRGGBBAA)", value)
	}
	c := canvas.Hex(value)
	*dst = &c
	return nil
}
