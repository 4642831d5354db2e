// Package skin declares the contracts between a renderable skin and the
// scene graph that owns it. The scene graph positions a skin in world
// space and asks it for a texture once per frame; the skin reports its
// logical size and notifies the owner when its visuals changed.
package skin

import "github.com/kenzieshane/TurbowarpMobile/gpu"

// Size is a logical width/height pair in skin pixels (pre-scale).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Skin is the capability set the scene graph relies on: a skin produces a
// GPU texture for a requested scale, reports its logical size and can be
// disposed. Change notification is configured at construction time rather
// than through this interface, so the owner decides whether it wants one.
type Skin interface {
	// Size returns the skin's logical footprint. The result is cached and
	// only recomputed after a mutation.
	Size() Size
	// Texture returns a texture reflecting the skin at the given two-axis
	// percentage scale (100 means 1:1). The handle is owned by the skin
	// and must not be released by the caller.
	Texture(scaleX, scaleY float64) gpu.Texture
	// Dispose releases the skin's GPU resource. The skin must not be used
	// afterwards.
	Dispose()
}

// Measurer measures the pixel width of a single line of text under the
// current font configuration. Implementations memoize widths; Invalidate
// drops the memo when font metrics may have changed.
type Measurer interface {
	Width(line string) float64
	Invalidate()
}

// Wrapper splits raw text into display lines no wider than maxWidth.
// A non-positive maxWidth disables width-based wrapping; explicit
// newlines are always honored.
type Wrapper interface {
	Wrap(text string, maxWidth float64) []string
}

// WrapperFactory builds a Wrapper on top of a width measurer. The host
// renderer supplies one when it wants to control wrapping; otherwise the
// bubble package's greedy wrapper is used.
type WrapperFactory func(m Measurer) Wrapper
