package g3d

import (
	"fmt"
	"image/color"
)

// RGB is a shader output color. Each component is an intensity in [0, 1];
// values outside the range are clamped when written to a RenderTarget.
type RGB struct {
	R, G, B float64
}

// Common colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{1, 1, 1}
	Magenta = RGB{1, 0, 1}
)

// Grey returns a color with all components set to v.
func Grey(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

// Scale multiplies every component by s.
func (c RGB) Scale(s float64) RGB {
	return RGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Bytes returns the color quantized to 8 bits per channel.
func (c RGB) Bytes() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Color converts RGB to an opaque color.Color.
func (c RGB) Color() color.Color {
	r, g, b := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

// FromColor converts a standard color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Malformed input yields Magenta, the same color used for missing materials.
func Hex(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Magenta
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Magenta
		}
	default:
		return Magenta
	}

	return RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func to8(v float64) uint8 {
	return uint8(saturate(v)*255 + 0.5)
}
