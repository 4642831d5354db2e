package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kenzieshane/TurbowarpMobile/bubble"
)

// yamlFile mirrors the DSL shape in YAML:
//
//	themes:
//	  neon:
//	    bubble: {fill: "#101020", stroke-width: 2}
//	    text: {font: go-mono, size: 12pt}
//
// Scalar values are normalized to strings so both front ends share one
// compile step.
type yamlFile struct {
	Themes map[string]yamlTheme `yaml:"themes"`
}

type yamlTheme struct {
	Bubble map[string]any `yaml:"bubble"`
	Text   map[string]any `yaml:"text"`
}

// ParseYAML compiles a YAML theme document to patches by theme name.
func ParseYAML(data []byte) (map[string]bubble.Patch, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse yaml themes: %w", err)
	}
	themes := make(map[string]bubble.Patch, len(file.Themes))
	for name, th := range file.Themes {
		var patch bubble.Patch
		for _, section := range []struct {
			kind    string
			entries map[string]any
		}{{"bubble", th.Bubble}, {"text", th.Text}} {
			for key, value := range section.entries {
				if err := applyEntry(&patch, section.kind, key, scalarString(value)); err != nil {
					return nil, fmt.Errorf("theme %s: %w", name, err)
				}
			}
		}
		themes[name] = patch
	}
	return themes, nil
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
