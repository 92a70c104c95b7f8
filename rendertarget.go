package g3d

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/gputypes"
)

// ErrInvalidSize is returned when a RenderTarget is created with a
// non-positive width or height.
var ErrInvalidSize = errors.New("g3d: render target size must be positive")

// RenderTarget is the color and depth buffer a Scene renders into.
//
// The color buffer is packed RGBA8, row-major with a top-left origin and
// 4 bytes per pixel; alpha is always 255 for written pixels. This layout
// is stable and can be handed to any host as-is. The depth buffer holds one
// view-space depth per pixel and is always the same size as the color buffer.
type RenderTarget struct {
	width  int
	height int
	color  []uint8   // RGBA format, 4 bytes per pixel
	depth  []float64 // view-space depth, +Inf where nothing was drawn
}

// NewRenderTarget creates a cleared render target.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	rt := &RenderTarget{
		width:  width,
		height: height,
		color:  make([]uint8, width*height*4),
		depth:  make([]float64, width*height),
	}
	rt.Clear()
	return rt, nil
}

// Width returns the width of the target in pixels.
func (rt *RenderTarget) Width() int {
	return rt.width
}

// Height returns the height of the target in pixels.
func (rt *RenderTarget) Height() int {
	return rt.height
}

// Size returns the target dimensions as a vector.
func (rt *RenderTarget) Size() Vec2 {
	return Vec2{X: float64(rt.width), Y: float64(rt.height)}
}

// Pixels returns the packed RGBA8 color buffer. The slice aliases the
// target and is overwritten by the next frame.
func (rt *RenderTarget) Pixels() []uint8 {
	return rt.color
}

// Clear resets every color byte to 0 and every depth to +Inf, meaning
// nothing has been drawn yet and any first write passes the depth test.
func (rt *RenderTarget) Clear() {
	clear(rt.color)
	n := len(rt.depth)
	if n == 0 {
		return
	}
	rt.depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(rt.depth[i:], rt.depth[:i])
	}
}

// DepthTest reports whether a fragment at depth should be rejected
// because something nearer is already stored at (x, y). It does not
// modify the target.
func (rt *RenderTarget) DepthTest(x, y int, depth float64) bool {
	return depth > rt.depth[y*rt.width+x]
}

// DepthAt returns the stored depth at (x, y).
func (rt *RenderTarget) DepthAt(x, y int) float64 {
	return rt.depth[y*rt.width+x]
}

// PlotAtDepth writes depth and color at (x, y) unconditionally. Callers
// are expected to have run DepthTest first.
func (rt *RenderTarget) PlotAtDepth(x, y int, depth float64, c RGB) {
	i := y*rt.width + x
	rt.depth[i] = depth
	r, g, b := c.Bytes()
	p := rt.color[i*4 : i*4+4 : i*4+4]
	p[0] = r
	p[1] = g
	p[2] = b
	p[3] = 255
}

// ColorFormat describes the color buffer layout for GPU hosts that
// upload Pixels into a texture.
func (rt *RenderTarget) ColorFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Extent returns the target size as a single-layer texture extent.
func (rt *RenderTarget) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(rt.width),
		Height:             uint32(rt.height),
		DepthOrArrayLayers: 1,
	}
}

// RGBA returns an *image.RGBA that shares the color buffer, so standard
// image/draw code can paint over a rendered frame.
func (rt *RenderTarget) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    rt.color,
		Stride: rt.width * 4,
		Rect:   image.Rect(0, 0, rt.width, rt.height),
	}
}

// ToImage returns a copy of the color buffer as an image.RGBA.
func (rt *RenderTarget) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	copy(img.Pix, rt.color)
	return img
}

// SavePNG saves the color buffer to a PNG file.
func (rt *RenderTarget) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, rt.RGBA())
}

// At implements the image.Image interface.
func (rt *RenderTarget) At(x, y int) color.Color {
	if x < 0 || x >= rt.width || y < 0 || y >= rt.height {
		return color.RGBA{}
	}
	i := (y*rt.width + x) * 4
	return color.RGBA{R: rt.color[i], G: rt.color[i+1], B: rt.color[i+2], A: rt.color[i+3]}
}

// Bounds implements the image.Image interface.
func (rt *RenderTarget) Bounds() image.Rectangle {
	return image.Rect(0, 0, rt.width, rt.height)
}

// ColorModel implements the image.Image interface.
func (rt *RenderTarget) ColorModel() color.Model {
	return color.RGBAModel
}
