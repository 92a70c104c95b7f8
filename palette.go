package g3d

import "math/rand/v2"

// PaletteSize is the number of colors in a RandomShader palette.
const PaletteSize = 75

var defaultPalette = NewPalette(PaletteSize, 1)

// NewPalette returns n pseudo-random colors. The sequence is fully
// determined by seed, so renders are reproducible across runs.
func NewPalette(n int, seed uint64) []RGB {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	palette := make([]RGB, n)
	for i := range palette {
		palette[i] = RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
	}
	return palette
}
