package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/kenzieshane/TurbowarpMobile/binding"
	"github.com/kenzieshane/TurbowarpMobile/bubble"
	"github.com/kenzieshane/TurbowarpMobile/gpu"
	"github.com/kenzieshane/TurbowarpMobile/theme"
)

func main() {
	text := flag.String("text", "Hello!", "bubble text (supports ${path} placeholders with -data)")
	typeName := flag.String("type", "say", "bubble type: say or think")
	left := flag.Bool("left", false, "point the tail to the left")
	scale := flag.Float64("scale", 100, "render scale in percent (100 = 1:1)")
	themePath := flag.String("theme", "", "theme file (.bubbletheme DSL or .yaml)")
	themeName := flag.String("theme-name", "default", "theme to select from the theme file")
	dataJSON := flag.String("data", "", "JSON data bound to ${path} placeholders")
	output := flag.String("out", "output/bubble.png", "PNG output path")
	debug := flag.String("debug", "", "layout debug JSON output path")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("parsing -data JSON: %v", err)
		}
	}

	if err := run(*text, *typeName, *left, *scale, *themePath, *themeName, *output, *debug, inputData); err != nil {
		log.Fatalf("rendering bubble: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// run wires data binding, theming, layout and rasterization together.
func run(text, typeName string, left bool, scale float64, themePath, themeName, output, debugPath string, data any) error {
	ctx := gpu.NewSoftware()
	s := bubble.New(ctx, bubble.Options{})
	defer s.Dispose()

	if themePath != "" {
		themes, err := theme.Load(themePath)
		if err != nil {
			return fmt.Errorf("loading theme file: %w", err)
		}
		patch, ok := themes[themeName]
		if !ok {
			return fmt.Errorf("theme %q not found in %s", themeName, themePath)
		}
		s.ApplyStyle(patch)
	}

	s.SetContent(bubble.ParseType(typeName), binding.Interpolate(text, data), left)

	if debugPath != "" {
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("creating debug directory: %w", err)
		}
		if err := bubble.WriteLayoutJSON(s.Layout(), debugPath); err != nil {
			return fmt.Errorf("writing layout JSON: %w", err)
		}
	}

	tex := s.Texture(scale, scale).(*gpu.SoftwareTexture)
	img := tex.Image()
	if img == nil {
		return fmt.Errorf("no pixels were uploaded")
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
