// Package theme loads named bubble style presets from a small DSL or from
// YAML and compiles them into style patches. A theme never has to spell
// out every field: anything unset keeps the skin's current value, exactly
// like a direct ApplyStyle call.
package theme

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/kenzieshane/TurbowarpMobile/bubble"
)

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|px)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:;]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// File is the root AST node of a theme file.
type File struct {
	Pos    lexer.Position `parser:""`
	Themes []*Theme       `parser:"Newline* ( @@ Newline* )*"`
}

// Theme is one named preset with its section blocks.
type Theme struct {
	Name   string   `parser:"'theme' @Ident"`
	Blocks []*Block `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// Block is a bubble or text section holding key/value entries.
type Block struct {
	Kind    string   `parser:"@('bubble' | 'text')"`
	Entries []*Entry `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry is a single `key: value` assignment.
type Entry struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' Newline* @@"`
}

// Value is a string, number (optionally unit-suffixed) or hex color.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
}

// text returns the raw scalar for the shared compile step.
func (v *Value) text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	default:
		return ""
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse reads theme DSL content and compiles it to patches by theme name.
func Parse(r io.Reader) (map[string]bubble.Patch, error) {
	file, err := fileParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return compile(file)
}

// ParseString parses theme DSL content from a string.
func ParseString(input string) (map[string]bubble.Patch, error) {
	file, err := fileParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return compile(file)
}

func compile(file *File) (map[string]bubble.Patch, error) {
	themes := make(map[string]bubble.Patch, len(file.Themes))
	for _, th := range file.Themes {
		var patch bubble.Patch
		for _, block := range th.Blocks {
			for _, entry := range block.Entries {
				if err := applyEntry(&patch, block.Kind, entry.Key, entry.Value.text()); err != nil {
					return nil, fmt.Errorf("theme %s: %w", th.Name, err)
				}
			}
		}
		themes[th.Name] = patch
	}
	return themes, nil
}
