package g3d

import (
	"image"
	"math"
)

// Texture is an RGB image sampled by shaders.
//
// Row 0 of the stored data is the top of the image, while texture
// coordinate v=0 addresses the bottom row, matching the usual mesh
// file convention.
type Texture struct {
	width  int
	height int
	pix    []RGB // row-major, len = width*height
}

// NewTexture wraps a flattened row-major color array.
// len(pix) must equal width*height.
func NewTexture(width, height int, pix []RGB) *Texture {
	return &Texture{width: width, height: height, pix: pix}
}

// SolidTexture returns a 1x1 texture of a single color.
func SolidTexture(c RGB) *Texture {
	return NewTexture(1, 1, []RGB{c})
}

// TextureFromImage converts any image into a Texture. Alpha is discarded.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]RGB, width*height)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			for x := 0; x < width; x++ {
				pix[y*width+x] = RGB{
					R: float64(row[x*4+0]) / 255,
					G: float64(row[x*4+1]) / 255,
					B: float64(row[x*4+2]) / 255,
				}
			}
		}
		return NewTexture(width, height, pix)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pix[y*width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return NewTexture(width, height, pix)
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Sample returns the nearest texel to uv. Coordinates are clamped to
// [0, 1]; there is no filtering or wrapping.
func (t *Texture) Sample(uv Vec2) RGB {
	uv = uv.Saturate()
	x := int(math.Round(uv.X * float64(t.width-1)))
	y := int(math.Round((1 - uv.Y) * float64(t.height-1)))
	return t.pix[y*t.width+x]
}
