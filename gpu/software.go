package gpu

import "image"

// Software is a Context that keeps textures in main memory. It backs the
// CLI (which writes the uploaded pixels out as PNG) and the tests (which
// count uploads and releases to observe caching behavior).
type Software struct {
	created  int
	released int
}

// NewSoftware returns an in-memory GPU context.
func NewSoftware() *Software { return &Software{} }

// NewTexture implements Context.
func (s *Software) NewTexture(opts TextureOptions) Texture {
	s.created++
	return &SoftwareTexture{ctx: s, opts: opts}
}

// Created reports how many textures this context has handed out.
func (s *Software) Created() int { return s.created }

// Released reports how many textures have been released.
func (s *Software) Released() int { return s.released }

// SoftwareTexture retains the last uploaded pixel buffer.
type SoftwareTexture struct {
	ctx      *Software
	opts     TextureOptions
	img      *image.RGBA
	uploads  int
	released bool
}

// Upload implements Texture. The retained image is resized to match every
// upload, mirroring how a GPU resource is respecified in place.
func (t *SoftwareTexture) Upload(pix []byte, width, height int) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	t.img = img
	t.uploads++
}

// Release implements Texture.
func (t *SoftwareTexture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.ctx.released++
}

// Image returns the retained pixels of the last upload, or nil before the
// first upload.
func (t *SoftwareTexture) Image() *image.RGBA { return t.img }

// Uploads reports how many times pixels were uploaded to this texture.
func (t *SoftwareTexture) Uploads() int { return t.uploads }

// Options returns the creation options, as seen by the host.
func (t *SoftwareTexture) Options() TextureOptions { return t.opts }

// Released reports whether Release has been called.
func (t *SoftwareTexture) Released() bool { return t.released }
