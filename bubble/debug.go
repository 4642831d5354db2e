package bubble

import (
	"encoding/json"
	"os"
)

// WriteLayoutJSON dumps a derived layout as indented JSON, for debugging
// wrap and size issues without rasterizing.
func WriteLayoutJSON(lay Layout, path string) error {
	data, err := json.MarshalIndent(lay, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
