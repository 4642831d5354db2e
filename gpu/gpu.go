// Package gpu defines the slice of the host renderer's GPU interface that
// a skin needs: creating a texture resource, uploading pixels to it and
// releasing it. The host owns the device; skins only own the textures
// they create through it.
package gpu

// WrapMode selects how a texture samples outside its bounds.
type WrapMode int

const (
	// ClampToEdge repeats the border pixel. Bubble textures are drawn
	// exactly once at their native size, so clamping is always wanted.
	ClampToEdge WrapMode = iota
	Repeat
)

// TextureOptions configures a texture resource at creation time.
type TextureOptions struct {
	Wrap    WrapMode
	Mipmaps bool
}

// Context creates texture resources. Borrowed from the host renderer and
// never mutated structurally by skins.
type Context interface {
	NewTexture(opts TextureOptions) Texture
}

// Texture is a GPU texture resource exclusively owned by its creator.
type Texture interface {
	// Upload replaces the texture contents with an RGBA pixel buffer of
	// the given dimensions, resizing the resource in place. pix holds
	// 4*width*height bytes in row-major RGBA order.
	Upload(pix []byte, width, height int)
	// Release frees the GPU resource. Must be called exactly once.
	Release()
}
