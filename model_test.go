package g3d

import (
	"strings"
	"testing"
)

func TestNewModel_DereferencesFaces(t *testing.T) {
	mesh := Mesh{
		TexCoords: []Vec2{{0.25, 0.75}},
		Normals:   []Vec3{{0, 1, 0}},
	}
	mesh.AddVertex(V3(0, 0, 0))
	mesh.AddVertex(V3(1, 0, 0))
	mesh.AddVertex(V3(0, 1, 0))
	mesh.AddVertex(V3(0, 0, 1))

	withAttrs := Face{Vertex: [3]int{3, 2, 1}, TexCoord: [3]int{0, 0, 0}, Normal: [3]int{0, 0, 0}, Material: "stone"}
	mesh.Faces = []Face{NewFace(0, 1, 2), withAttrs}

	m := NewModel("probe", mesh, nil)
	tris := m.Triangles()
	if len(tris) != 2 || len(m.Vertices()) != 4 {
		t.Fatalf("got %d triangles, %d vertices", len(tris), len(m.Vertices()))
	}

	if tris[0].Vertices != [3]Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)} {
		t.Errorf("triangle 0 vertices = %v", tris[0].Vertices)
	}
	if tris[0].TexCoords != [3]Vec2{} || tris[0].Normals != [3]Vec3{} {
		t.Error("missing attributes should be zero")
	}

	if tris[1].Index != 1 || tris[1].Material != "stone" {
		t.Errorf("triangle 1 = index %d material %q", tris[1].Index, tris[1].Material)
	}
	if tris[1].Vertices[0] != V3(0, 0, 1) || tris[1].TexCoords[2] != V2(0.25, 0.75) || tris[1].Normals[1] != V3(0, 1, 0) {
		t.Errorf("triangle 1 = %+v", tris[1])
	}
	if m.Transform.Scale != V3(1, 1, 1) {
		t.Errorf("default scale = %v", m.Transform.Scale)
	}
}

func TestModel_Chaining(t *testing.T) {
	m := NewModel("cube", CubeMesh(2), nil).
		Translate(1, 2, 3).
		Translate(1, 0, 0).
		ScaleBy(2, 3, 4).
		Rotate(0.5, 0.25)

	tr := m.Transform
	if tr.Position != V3(2, 2, 3) || tr.Scale != V3(2, 3, 4) || tr.Yaw != 0.5 || tr.Pitch != 0.25 {
		t.Errorf("transform = %v", tr)
	}
	if s := m.String(); !strings.HasPrefix(s, "MODEL cube tris=12") {
		t.Errorf("String() = %q", s)
	}
}

func TestCubeMesh(t *testing.T) {
	mesh := CubeMesh(2)
	if len(mesh.Vertices) != 24 || len(mesh.Faces) != 12 || len(mesh.Normals) != 6 || len(mesh.TexCoords) != 4 {
		t.Fatalf("cube has %d vertices, %d faces, %d normals, %d texcoords",
			len(mesh.Vertices), len(mesh.Faces), len(mesh.Normals), len(mesh.TexCoords))
	}
	for _, v := range mesh.Vertices {
		for k := 0; k < 3; k++ {
			if v[k] != 1 && v[k] != -1 {
				t.Fatalf("vertex %v not on the cube corners", v)
			}
		}
	}

	// In the left-handed view frame, a face wound clockwise seen from
	// outside has (b-a)x(c-a) along its outward normal.
	m := NewModel("cube", mesh, nil)
	for _, tri := range m.Triangles() {
		a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
		geo := b.Sub(a).Cross(c.Sub(a))
		if geo.Dot(tri.Normals[0]) <= 0 {
			t.Errorf("triangle %d winds counter-clockwise from outside", tri.Index)
		}
		centroid := a.Add(b).Add(c).Div(3)
		if centroid.Dot(tri.Normals[0]) <= 0 {
			t.Errorf("triangle %d normal %v points inward", tri.Index, tri.Normals[0])
		}
	}
}

func TestPlaneMesh(t *testing.T) {
	mesh := PlaneMesh(3, -1)
	if len(mesh.Vertices) != 4 || len(mesh.Faces) != 2 {
		t.Fatalf("plane has %d vertices, %d faces", len(mesh.Vertices), len(mesh.Faces))
	}
	for _, v := range mesh.Vertices {
		if v[1] != -1 {
			t.Errorf("vertex %v off the plane", v)
		}
	}
	mesh.TexCoords[0] = V2(9, 9)
	if quadTexCoords[0] != V2(0, 0) {
		t.Error("PlaneMesh shares the package texture coordinates")
	}
}
