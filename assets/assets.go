// Package assets loads textures for g3d shaders.
//
// Images are decoded with bild's imgio, so every format registered with
// the image package can be read. PNG, JPEG and GIF come from the
// standard library; this package also registers BMP, TIFF and WebP.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/cache"
	"github.com/gogpu/g3d/obj"
)

// DefaultCacheSize is the number of textures a Loader keeps by default.
const DefaultCacheSize = 64

// LoadTexture decodes the image at path into a texture.
func LoadTexture(path string) (*g3d.Texture, error) {
	return loadTexture(path, 0)
}

func loadTexture(path string, maxSize int) (*g3d.Texture, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}

	rgba := clone.AsRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("assets: %s: empty image", path)
	}
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		nw, nh := fitWithin(w, h, maxSize)
		g3d.Logger().Debug("assets: downscaling texture", "path", path,
			"from", fmt.Sprintf("%dx%d", w, h), "to", fmt.Sprintf("%dx%d", nw, nh))
		rgba = transform.Resize(rgba, nw, nh, transform.NearestNeighbor)
	}
	return g3d.TextureFromImage(rgba), nil
}

// fitWithin scales w x h down so the longer side is limit, keeping the
// aspect ratio and at least one pixel per side.
func fitWithin(w, h, limit int) (int, int) {
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// Loader loads textures through a bounded cache, so a texture shared by
// several models or materials is decoded once.
type Loader struct {
	// MaxSize, when positive, downsamples textures whose width or height
	// exceeds it.
	MaxSize int

	textures *cache.Cache[string, *g3d.Texture]
}

// NewLoader creates a Loader caching up to capacity textures. A
// non-positive capacity selects DefaultCacheSize.
func NewLoader(capacity int) *Loader {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Loader{textures: cache.New[string, *g3d.Texture](capacity)}
}

// GetOrLoad returns the texture for path, decoding it on first use.
// Paths are cleaned before lookup.
func (l *Loader) GetOrLoad(path string) (*g3d.Texture, error) {
	key := filepath.Clean(path)
	return l.textures.GetOrLoad(key, func() (*g3d.Texture, error) {
		tex, err := loadTexture(key, l.MaxSize)
		if err != nil {
			return nil, err
		}
		g3d.Logger().Info("texture loaded", "path", key,
			"width", tex.Width(), "height", tex.Height())
		return tex, nil
	})
}

// Stats reports cache usage.
func (l *Loader) Stats() cache.Stats {
	return l.textures.Stats()
}

// LoadMaterials builds one texture per material. Diffuse map paths are
// resolved against dir. A material without a diffuse map becomes a 1x1
// texture of its diffuse color; one whose map fails to load is left out,
// so MaterialShader draws it magenta, and the failure is logged.
func (l *Loader) LoadMaterials(dir string, materials map[string]obj.Material) map[string]*g3d.Texture {
	out := make(map[string]*g3d.Texture, len(materials))
	for name, m := range materials {
		if m.DiffuseMap == "" {
			out[name] = g3d.SolidTexture(m.Diffuse)
			continue
		}

		path := m.DiffuseMap
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		tex, err := l.GetOrLoad(path)
		if err != nil {
			g3d.Logger().Warn("material texture unavailable", "material", name, "err", err)
			continue
		}
		out[name] = tex
	}
	return out
}
