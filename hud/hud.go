// Package hud draws a plain text overlay onto rendered frames.
package hud

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/g3d"
)

// Margin is the gap in pixels between the frame edge and the text block.
const Margin = 4

var face = basicfont.Face7x13

// Draw writes lines of white text to the top-left corner of rt, one
// line per row. Each glyph gets a one pixel black shadow so it stays
// readable over bright geometry.
func Draw(rt *g3d.RenderTarget, lines []string) {
	DrawImage(rt.RGBA(), lines, color.White)
}

// DrawImage draws lines onto dst in col, starting at the top-left corner
// of dst's bounds.
func DrawImage(dst draw.Image, lines []string, col color.Color) {
	if len(lines) == 0 {
		return
	}
	origin := dst.Bounds().Min
	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	shadow := &font.Drawer{Dst: dst, Src: image.Black, Face: face}
	text := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := origin.X + Margin
		y := origin.Y + Margin + ascent + i*lineHeight

		shadow.Dot = fixed.P(x+1, y+1)
		shadow.DrawString(line)
		text.Dot = fixed.P(x, y)
		text.DrawString(line)
	}
}

// Measure returns the size of the block DrawImage covers for lines,
// margins and shadow included.
func Measure(lines []string) (width, height int) {
	if len(lines) == 0 {
		return 0, 0
	}
	widest := 0
	for _, line := range lines {
		widest = max(widest, font.MeasureString(face, line).Ceil())
	}
	lineHeight := face.Metrics().Height.Ceil()
	return 2*Margin + widest + 1, 2*Margin + len(lines)*lineHeight + 1
}

// Status returns the overlay lines for a scene: one per model, then the
// camera and the frame statistics.
func Status(s *g3d.Scene) []string {
	lines := make([]string, 0, len(s.Models)+2)
	for _, m := range s.Models {
		lines = append(lines, m.String())
	}
	return append(lines, s.Camera.String(), s.Stats().String())
}
