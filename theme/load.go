package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kenzieshane/TurbowarpMobile/bubble"
)

// Load reads a theme file and compiles it, dispatching on the extension:
// .yaml/.yml files are YAML, everything else is the theme DSL.
func Load(path string) (map[string]bubble.Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(bytes.NewReader(data))
	}
}
