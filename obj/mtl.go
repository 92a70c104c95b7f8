package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gogpu/g3d"
)

// Material is the subset of an MTL material the renderer uses.
type Material struct {
	Name string

	// DiffuseMap is the map_Kd texture path as written, or "".
	DiffuseMap string

	// Diffuse is the Kd color. Defaults to white.
	Diffuse g3d.RGB
}

// LoadMTL parses the MTL file at path.
func LoadMTL(path string) (map[string]Material, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseMTL(f)
}

// ParseMTL reads an MTL library into materials keyed by normalized name.
func ParseMTL(r io.Reader) (map[string]Material, error) {
	materials := make(map[string]Material)
	var cur *Material
	flush := func() {
		if cur != nil {
			materials[cur.Name] = *cur
		}
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "newmtl":
			flush()
			cur = &Material{Name: MaterialName(strings.Join(fields[1:], " ")), Diffuse: g3d.White}

		case "Kd":
			if cur == nil {
				return nil, fmt.Errorf("obj: mtl line %d: Kd before newmtl", line)
			}
			rgb, err := parseFloats(fields[1:], 3, 3)
			if err != nil {
				return nil, fmt.Errorf("obj: mtl line %d: %w", line, err)
			}
			cur.Diffuse = g3d.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}

		case "map_Kd":
			if cur == nil {
				return nil, fmt.Errorf("obj: mtl line %d: map_Kd before newmtl", line)
			}
			// Options such as -s or -o precede the file name; the name is last.
			if len(fields) > 1 {
				cur.DiffuseMap = fields[len(fields)-1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	flush()
	return materials, nil
}
