// Package binding substitutes ${path.to.value} placeholders in bubble
// text with values from caller-provided data, typically decoded JSON.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate replaces every ${path} in text with the value found at that
// path in data. Paths use dot notation with optional [i] indexing, e.g.
// "speaker.lines[0]". Missing paths and nil data leave the placeholder
// untouched so partial data never corrupts the text.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = m[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

// splitSegment parses "name[1][2]" into the name and index list.
func splitSegment(segment string) (string, []int, bool) {
	name, rest, found := strings.Cut(segment, "[")
	if !found {
		return segment, nil, true
	}
	var indexes []int
	for rest != "" {
		numStr, tail, found := strings.Cut(rest, "]")
		if !found {
			return "", nil, false
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = strings.TrimPrefix(tail, "[")
		if tail != "" && rest == tail {
			return "", nil, false
		}
	}
	return name, indexes, true
}
