package theme

import (
	"math"
	"strings"
	"testing"
)

const demoTheme = `
// stock look with a darker outline
theme default {
  bubble {
    fill: #FFFFFF
    stroke: #3D79CC
    stroke-width: 2
    corner-radius: 12
  }
  text {
    font: "go-mono"
    size: 12pt
    fill: #575E75
  }
}

theme shout {
  bubble { stroke-width: 6; tail-height: 18 }
}
`

func TestParseThemes(t *testing.T) {
	themes, err := Parse(strings.NewReader(demoTheme))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected 2 themes, got %d", len(themes))
	}

	def, ok := themes["default"]
	if !ok {
		t.Fatalf("missing default theme")
	}
	if def.StrokeWidth == nil || *def.StrokeWidth != 2 {
		t.Fatalf("stroke-width not applied: %+v", def.StrokeWidth)
	}
	if def.Font == nil || *def.Font != "go-mono" {
		t.Fatalf("font not applied: %+v", def.Font)
	}
	if def.FontSize == nil || math.Abs(*def.FontSize-12*PtToPx) > 1e-9 {
		t.Fatalf("12pt should convert to %g px, got %+v", 12*PtToPx, def.FontSize)
	}
	if def.BubbleStroke == nil || def.BubbleStroke.B == 0 {
		t.Fatalf("stroke color not applied: %+v", def.BubbleStroke)
	}
	if def.Padding != nil {
		t.Fatalf("unset keys must stay nil in the patch")
	}

	shout := themes["shout"]
	if shout.TailHeight == nil || *shout.TailHeight != 18 {
		t.Fatalf("tail-height not applied: %+v", shout.TailHeight)
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := ParseString(`theme broken { bubble { glow: 3 } }`)
	if err == nil || !strings.Contains(err.Error(), "glow") {
		t.Fatalf("expected an unknown-key error, got %v", err)
	}
}

func TestParseRejectsBadSyntax(t *testing.T) {
	if _, err := ParseString(`theme oops { bubble { fill } }`); err == nil {
		t.Fatalf("expected a syntax error")
	}
}

func TestParseSemicolonSeparators(t *testing.T) {
	themes, err := ParseString(`theme t { bubble { padding: 4; min-width: 80 } }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	p := themes["t"]
	if p.Padding == nil || *p.Padding != 4 || p.MinWidth == nil || *p.MinWidth != 80 {
		t.Fatalf("semicolon-separated entries not applied: %+v", p)
	}
}
