package buttonnode

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderSize is the edge length of the texture returned for image
// names that cannot be resolved.
const placeholderSize = 128

// Texture is an opaque drawable handle: an image plus the size it was
// authored at. The zero value is the empty texture, which has no size and
// draws nothing.
type Texture struct {
	Name   string
	Image  *ebiten.Image
	Width  float64
	Height float64

	placeholder bool
}

// NewTexture wraps img as a named texture sized to the image bounds.
func NewTexture(name string, img *ebiten.Image) Texture {
	if img == nil {
		return Texture{Name: name}
	}
	b := img.Bounds()
	return Texture{Name: name, Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// PlaceholderTexture returns the magenta stand-in used when name does not
// resolve to an image.
func PlaceholderTexture(name string) Texture {
	return Texture{Name: name, Width: placeholderSize, Height: placeholderSize, placeholder: true}
}

// IsEmpty reports whether t is the empty texture.
func (t Texture) IsEmpty() bool {
	return t.Image == nil && !t.placeholder
}

// IsPlaceholder reports whether t stands in for a missing image.
func (t Texture) IsPlaceholder() bool {
	return t.placeholder
}

// Size returns the texture's authored size.
func (t Texture) Size() (w, h float64) {
	return t.Width, t.Height
}

// drawImage returns the image to draw for t, or nil for the empty texture.
func (t Texture) drawImage() *ebiten.Image {
	if t.placeholder {
		return ensureMagentaImage()
	}
	return t.Image
}

// magenta placeholder singleton (no sync.Once, the scene graph is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
