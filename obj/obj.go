package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/g3d"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrFaceTooSmall is returned for an f directive with fewer than three corners.
	ErrFaceTooSmall = errors.New("obj: face needs at least 3 vertices")

	// ErrIndexOutOfRange is returned when a face refers to an element that
	// has not been declared.
	ErrIndexOutOfRange = errors.New("obj: index out of range")
)

// Result is a parsed OBJ file.
type Result struct {
	Mesh g3d.Mesh

	// MaterialLibs lists the mtllib files named by the OBJ file, in order,
	// as written (usually relative to the OBJ file).
	MaterialLibs []string
}

// Load parses the OBJ file at path.
func Load(path string) (*Result, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	res, err := Parse(f)
	if err != nil {
		return nil, err
	}
	g3d.Logger().Info("obj loaded", "path", path,
		"vertices", len(res.Mesh.Vertices), "faces", len(res.Mesh.Faces))
	return res, nil
}

// Parse reads an OBJ document. Errors carry the 1-based line number.
func Parse(r io.Reader) (*Result, error) {
	p := parser{res: &Result{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return p.res, nil
}

type parser struct {
	res      *Result
	material string
	corners  []corner // scratch for the face being parsed
}

type corner struct {
	vertex, texCoord, normal int
}

func (p *parser) parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	mesh := &p.res.Mesh
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "v":
		xyzw, err := parseFloats(args, 3, 4)
		if err != nil {
			return err
		}
		w := 1.0
		if len(xyzw) == 4 {
			w = xyzw[3]
		}
		mesh.Vertices = append(mesh.Vertices, [4]float64{xyzw[0], xyzw[1], xyzw[2], w})

	case "vt":
		uvw, err := parseFloats(args, 1, 3)
		if err != nil {
			return err
		}
		tc := g3d.Vec2{X: uvw[0]}
		if len(uvw) > 1 {
			tc.Y = uvw[1]
		}
		mesh.TexCoords = append(mesh.TexCoords, tc)

	case "vn":
		xyz, err := parseFloats(args, 3, 3)
		if err != nil {
			return err
		}
		mesh.Normals = append(mesh.Normals, g3d.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})

	case "f":
		return p.parseFace(args)

	case "usemtl":
		p.material = MaterialName(strings.Join(args, " "))

	case "mtllib":
		p.res.MaterialLibs = append(p.res.MaterialLibs, args...)

	default:
		g3d.Logger().Debug("obj: directive ignored", "directive", cmd)
	}
	return nil
}

// parseFace fan-triangulates a face: corners (0, i-1, i) for i >= 2.
func (p *parser) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: got %d", ErrFaceTooSmall, len(args))
	}

	mesh := &p.res.Mesh
	p.corners = p.corners[:0]
	for _, arg := range args {
		c, err := parseCorner(arg, len(mesh.Vertices), len(mesh.TexCoords), len(mesh.Normals))
		if err != nil {
			return err
		}
		p.corners = append(p.corners, c)
	}

	first := p.corners[0]
	for i := 2; i < len(p.corners); i++ {
		a, b := p.corners[i-1], p.corners[i]
		mesh.Faces = append(mesh.Faces, g3d.Face{
			Vertex:   [3]int{first.vertex, a.vertex, b.vertex},
			TexCoord: [3]int{first.texCoord, a.texCoord, b.texCoord},
			Normal:   [3]int{first.normal, a.normal, b.normal},
			Material: p.material,
		})
	}
	return nil
}

// parseCorner parses v, v/t, v//n or v/t/n into 0-based indices, with
// g3d.NoIndex for omitted attributes.
func parseCorner(s string, nv, nt, nn int) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("malformed face corner %q", s)
	}

	c := corner{vertex: g3d.NoIndex, texCoord: g3d.NoIndex, normal: g3d.NoIndex}
	var err error
	if c.vertex, err = resolveIndex(parts[0], nv); err != nil {
		return corner{}, err
	}
	if c.vertex == g3d.NoIndex {
		return corner{}, fmt.Errorf("face corner %q has no vertex", s)
	}
	if len(parts) > 1 {
		if c.texCoord, err = resolveIndex(parts[1], nt); err != nil {
			return corner{}, err
		}
	}
	if len(parts) > 2 {
		if c.normal, err = resolveIndex(parts[2], nn); err != nil {
			return corner{}, err
		}
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative relative index into a
// 0-based one, given that n elements have been declared so far. An empty
// string yields g3d.NoIndex.
func resolveIndex(s string, n int) (int, error) {
	if s == "" {
		return g3d.NoIndex, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}

	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
}

func parseFloats(args []string, minN, maxN int) ([]float64, error) {
	if len(args) < minN {
		return nil, fmt.Errorf("expected at least %d values, got %d", minN, len(args))
	}
	if len(args) > maxN {
		args = args[:maxN]
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

// MaterialName normalizes a material name the way Parse and ParseMTL do.
func MaterialName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
