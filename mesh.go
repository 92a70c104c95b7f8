package g3d

// NoIndex marks an absent attribute index in a Face.
const NoIndex = -1

// Mesh is the raw data a mesh provider (a file parser, a generator)
// hands to NewModel.
//
// Vertices are homogeneous; W is carried for fidelity with the source
// format but currently ignored. Indices in Faces must be in range for
// their attribute arrays; they are not validated.
type Mesh struct {
	Vertices  [][4]float64
	TexCoords []Vec2
	Normals   []Vec3
	Faces     []Face
}

// Face is one triangle of a Mesh: index triples into each attribute array
// plus an optional material name. An index of NoIndex means the attribute
// is absent for that corner and the zero value is used instead.
type Face struct {
	Vertex   [3]int
	TexCoord [3]int
	Normal   [3]int
	Material string
}

// NewFace returns a face that only references vertex positions.
func NewFace(a, b, c int) Face {
	return Face{
		Vertex:   [3]int{a, b, c},
		TexCoord: [3]int{NoIndex, NoIndex, NoIndex},
		Normal:   [3]int{NoIndex, NoIndex, NoIndex},
	}
}

// AddVertex appends a position with W=1 and returns its index.
func (m *Mesh) AddVertex(v Vec3) int {
	m.Vertices = append(m.Vertices, [4]float64{v.X, v.Y, v.Z, 1})
	return len(m.Vertices) - 1
}
