package g3d

// Shader computes the color of one covered pixel.
//
// texCoord and normal are perspective-correct interpolations of the
// triangle's attributes, depth is the view-space depth of the pixel and
// tri is the source triangle. Implementations must be pure: the rasterizer
// may call PixelColor any number of times in any order.
type Shader interface {
	PixelColor(texCoord Vec2, normal Vec3, depth float64, tri *Triangle) RGB
}

// RandomShader colors each triangle with a stable color picked from a
// fixed palette by triangle index.
type RandomShader struct {
	palette []RGB
}

// NewRandomShader returns a RandomShader with the default palette.
func NewRandomShader() *RandomShader {
	return &RandomShader{palette: defaultPalette}
}

// NewRandomShaderSeed returns a RandomShader whose palette is generated
// from seed. Equal seeds give equal palettes.
func NewRandomShaderSeed(seed uint64) *RandomShader {
	return &RandomShader{palette: NewPalette(PaletteSize, seed)}
}

// PixelColor implements Shader.
func (s *RandomShader) PixelColor(_ Vec2, _ Vec3, _ float64, tri *Triangle) RGB {
	return s.palette[tri.Index%len(s.palette)]
}

// LitShader shades in greyscale by the angle between the surface normal
// and a directional light.
type LitShader struct {
	// LightDirection points from the surface towards the light; it should
	// be normalized.
	LightDirection Vec3
}

// PixelColor implements Shader.
func (s *LitShader) PixelColor(_ Vec2, normal Vec3, _ float64, _ *Triangle) RGB {
	return Grey(lightIntensity(normal, s.LightDirection))
}

// TextureShader samples a texture with no lighting.
type TextureShader struct {
	Texture *Texture
}

// PixelColor implements Shader.
func (s *TextureShader) PixelColor(texCoord Vec2, _ Vec3, _ float64, _ *Triangle) RGB {
	return s.Texture.Sample(texCoord)
}

// LitTextureShader samples a texture and scales it by the same intensity
// LitShader computes.
type LitTextureShader struct {
	Texture        *Texture
	LightDirection Vec3
}

// PixelColor implements Shader.
func (s *LitTextureShader) PixelColor(texCoord Vec2, normal Vec3, _ float64, _ *Triangle) RGB {
	return s.Texture.Sample(texCoord).Scale(lightIntensity(normal, s.LightDirection))
}

// MaterialShader picks a texture by the triangle's material name.
// Triangles whose material has no texture are drawn in Magenta.
type MaterialShader struct {
	Materials map[string]*Texture
}

// PixelColor implements Shader.
func (s *MaterialShader) PixelColor(texCoord Vec2, _ Vec3, _ float64, tri *Triangle) RGB {
	tex, ok := s.Materials[tri.Material]
	if !ok || tex == nil {
		return Magenta
	}
	return tex.Sample(texCoord)
}

// DepthShader maps view-space depth to grey: white at Near, black at Far.
type DepthShader struct {
	Near, Far float64
}

// PixelColor implements Shader.
func (s *DepthShader) PixelColor(_ Vec2, _ Vec3, depth float64, _ *Triangle) RGB {
	if s.Far <= s.Near {
		return White
	}
	return Grey(1 - saturate((depth-s.Near)/(s.Far-s.Near)))
}

// missingShader stands in for a model without a shader.
type missingShader struct{}

func (missingShader) PixelColor(Vec2, Vec3, float64, *Triangle) RGB {
	return Magenta
}

// lightIntensity maps the cosine between normal and light from [-1, 1]
// to [0, 1], so faces pointing away from the light are dark but not black.
func lightIntensity(normal, lightDirection Vec3) float64 {
	return (normal.Normalize().Dot(lightDirection) + 1) / 2
}
