package bubble

import "github.com/kenzieshane/TurbowarpMobile/skin"

// Layout is the derived line layout of a bubble: the wrapped lines, the
// padded text area and the total footprint including stroke and tail.
type Layout struct {
	Lines    []string  `json:"lines"`
	TextArea skin.Size `json:"textArea"`
	Total    skin.Size `json:"total"`
}

// computeLayout derives the bubble footprint from wrapped lines.
//
//	textArea.width  = max(longest line, MinWidth) + 2*Padding
//	textArea.height = LineHeight * lineCount + 2*Padding
//	total.width     = textArea.width + StrokeWidth
//	total.height    = textArea.height + StrokeWidth + TailHeight
func computeLayout(style Style, lines []string, m skin.Measurer) Layout {
	if len(lines) == 0 {
		lines = []string{""}
	}
	longest := 0.0
	for _, line := range lines {
		if w := m.Width(line); w > longest {
			longest = w
		}
	}
	if longest < style.MinWidth {
		longest = style.MinWidth
	}

	textArea := skin.Size{
		Width:  longest + 2*style.Padding,
		Height: style.LineHeight*float64(len(lines)) + 2*style.Padding,
	}
	return Layout{
		Lines:    lines,
		TextArea: textArea,
		Total: skin.Size{
			Width:  textArea.Width + style.StrokeWidth,
			Height: textArea.Height + style.StrokeWidth + style.TailHeight,
		},
	}
}
