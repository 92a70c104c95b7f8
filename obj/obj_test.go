package obj

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/g3d"
)

const quadOBJ = `# a textured quad
mtllib quad.mtl
v -1 -1 0
v -1  1 0
v  1  1 0 0.5
v  1 -1 0
vt 0 0
vt 0 1
vt 1 1
vt 1
vn 0 0 -1
usemtl brick
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParse_Quad(t *testing.T) {
	res, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	mesh := res.Mesh

	if len(mesh.Vertices) != 4 || len(mesh.TexCoords) != 4 || len(mesh.Normals) != 1 {
		t.Fatalf("counts: v=%d vt=%d vn=%d", len(mesh.Vertices), len(mesh.TexCoords), len(mesh.Normals))
	}
	if mesh.Vertices[0][3] != 1 || mesh.Vertices[2][3] != 0.5 {
		t.Errorf("w components = %v, %v", mesh.Vertices[0][3], mesh.Vertices[2][3])
	}
	if mesh.TexCoords[3] != (g3d.Vec2{X: 1, Y: 0}) {
		t.Errorf("vt with one value = %v, want v defaulted to 0", mesh.TexCoords[3])
	}

	want := []g3d.Face{
		{Vertex: [3]int{0, 1, 2}, TexCoord: [3]int{0, 1, 2}, Normal: [3]int{0, 0, 0}, Material: "brick"},
		{Vertex: [3]int{0, 2, 3}, TexCoord: [3]int{0, 2, 3}, Normal: [3]int{0, 0, 0}, Material: "brick"},
	}
	if len(mesh.Faces) != len(want) {
		t.Fatalf("faces = %d, want %d", len(mesh.Faces), len(want))
	}
	for i := range want {
		if mesh.Faces[i] != want[i] {
			t.Errorf("face %d = %+v, want %+v", i, mesh.Faces[i], want[i])
		}
	}
	if len(res.MaterialLibs) != 1 || res.MaterialLibs[0] != "quad.mtl" {
		t.Errorf("MaterialLibs = %v", res.MaterialLibs)
	}
}

func TestParse_CornerForms(t *testing.T) {
	tests := []struct {
		name   string
		face   string
		vertex [3]int
		tex    [3]int
		normal [3]int
	}{
		{"vertex only", "f 1 2 3", [3]int{0, 1, 2}, [3]int{-1, -1, -1}, [3]int{-1, -1, -1}},
		{"vertex/tex", "f 1/3 2/2 3/1", [3]int{0, 1, 2}, [3]int{2, 1, 0}, [3]int{-1, -1, -1}},
		{"vertex//normal", "f 1//2 2//2 3//1", [3]int{0, 1, 2}, [3]int{-1, -1, -1}, [3]int{1, 1, 0}},
		{"relative", "f -3/-3/-2 -2/-2/-2 -1/-1/-1", [3]int{0, 1, 2}, [3]int{0, 1, 2}, [3]int{0, 0, 1}},
	}

	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvt 0 1\nvn 0 0 1\nvn 0 0 -1\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(strings.NewReader(header + tt.face + "\n"))
			if err != nil {
				t.Fatal(err)
			}
			f := res.Mesh.Faces[0]
			if f.Vertex != tt.vertex || f.TexCoord != tt.tex || f.Normal != tt.normal {
				t.Errorf("face = %+v", f)
			}
		})
	}
}

func TestParse_FanTriangulation(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 2 1 0\nv 1 2 0\nv 0 1 0\nf 1 2 3 4 5\n"
	res, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	if len(res.Mesh.Faces) != len(want) {
		t.Fatalf("faces = %d, want %d", len(res.Mesh.Faces), len(want))
	}
	for i, w := range want {
		if res.Mesh.Faces[i].Vertex != w {
			t.Errorf("face %d = %v, want %v", i, res.Mesh.Faces[i].Vertex, w)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
		line   string
	}{
		{"face too small", "v 0 0 0\nv 1 0 0\nf 1 2\n", ErrFaceTooSmall, "line 3"},
		{"index past end", "v 0 0 0\nf 1 2 3\n", ErrIndexOutOfRange, "line 2"},
		{"zero index", "v 0 0 0\nv 0 0 0\nv 0 0 0\nf 0 1 2\n", ErrIndexOutOfRange, "line 4"},
		{"relative past start", "v 0 0 0\nf -1 -2 -3\n", ErrIndexOutOfRange, "line 2"},
		{"bad number", "v 0 zero 0\n", nil, "line 1"},
		{"short vertex", "v 1 2\n", nil, "line 1"},
		{"bad corner", "v 0 0 0\nf 1/1/1/1 1 1\n", nil, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("err = %v, want it to mention %s", err, tt.line)
			}
		})
	}
}

func TestParse_IgnoresUnknownAndComments(t *testing.T) {
	src := "o thing\ng group\ns off\n\n   # just a comment\nv 0 0 0 # trailing\nl 1 1\n"
	res, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Mesh.Vertices) != 1 || len(res.Mesh.Faces) != 0 {
		t.Errorf("mesh = %+v", res.Mesh)
	}
}

func TestParse_MaterialNamesNormalized(t *testing.T) {
	// "café" spelled with a combining acute accent.
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl cafe\u0301\nf 1 2 3\n"
	res, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Mesh.Faces[0].Material; got != "caf\u00e9" {
		t.Errorf("material = %q, want NFC form", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Mesh.Faces) != 2 {
		t.Errorf("faces = %d, want 2", len(res.Mesh.Faces))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestParse_BuildsModel(t *testing.T) {
	res, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	m := g3d.NewModel("quad", res.Mesh, nil)
	tris := m.Triangles()
	if len(tris) != 2 {
		t.Fatalf("triangles = %d", len(tris))
	}
	if tris[1].Vertices[2] != (g3d.Vec3{X: 1, Y: -1}) || tris[1].TexCoords[1] != (g3d.Vec2{X: 1, Y: 1}) {
		t.Errorf("triangle 1 = %+v", tris[1])
	}
}
