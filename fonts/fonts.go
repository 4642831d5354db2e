// Package fonts provides the builtin font faces a bubble falls back to
// when no host font is supplied. Builtins are the Go fonts shipped with
// golang.org/x/image, keyed by name with a few familiar aliases.
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultName is the font used when a requested name is unknown.
const DefaultName = "Go"

var builtin = map[string][]byte{
	"go":        goregular.TTF,
	"go-bold":   gobold.TTF,
	"go-italic": goitalic.TTF,
	"go-mono":   gomono.TTF,
}

var aliases = map[string]string{
	"":          "go",
	"sans":      "go",
	"helvetica": "go", // classic default of the upstream bubble style
	"bold":      "go-bold",
	"italic":    "go-italic",
	"mono":      "go-mono",
	"monospace": "go-mono",
}

// Load returns the TTF bytes of a builtin font. Lookup is case-insensitive
// and alias-aware ("Helvetica" resolves to the regular Go face).
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[key]; ok {
		key = target
	}
	if data, ok := builtin[key]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("unknown builtin font %q", name)
}

// Default returns the TTF bytes of the default face.
func Default() []byte { return goregular.TTF }
