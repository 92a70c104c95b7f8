package g3d

import "fmt"

// Triangle is one face of a Model with its attributes already
// dereferenced from the model's arrays. Index is the face's position in
// the source mesh and stays stable for the lifetime of the model.
type Triangle struct {
	Face
	Index     int
	Vertices  [3]Vec3
	TexCoords [3]Vec2
	Normals   [3]Vec3
}

// RasterPoint is a vertex after clipping and projection: a screen
// position, its view-space depth and the attributes to interpolate.
// Triangle is an index into the owning model's triangle list.
//
// RasterPoints only live for a single render pass.
type RasterPoint struct {
	Screen   Vec2
	Depth    float64
	TexCoord Vec2
	Normal   Vec3
	Triangle int
}

// Model is a triangle mesh placed in the world by its own Transform and
// shaded by a Shader.
//
// Geometry is static after construction; Translate, ScaleBy and Rotate
// only touch the Transform, so moving a model costs the same regardless
// of mesh size.
type Model struct {
	Name      string
	Transform Transform
	Shader    Shader

	vertices  []Vec3
	texCoords []Vec2
	normals   []Vec3
	triangles []Triangle

	// rasterPoints is refilled by every render of this model, three
	// points per output triangle. Capacity is kept between frames.
	rasterPoints []RasterPoint
}

// NewModel builds a model from mesh data. Face indices are dereferenced
// once here; NoIndex attributes become zero values.
func NewModel(name string, mesh Mesh, shader Shader) *Model {
	m := &Model{
		Name:      name,
		Transform: NewTransform(),
		Shader:    shader,
		vertices:  make([]Vec3, len(mesh.Vertices)),
		texCoords: append([]Vec2(nil), mesh.TexCoords...),
		normals:   append([]Vec3(nil), mesh.Normals...),
		triangles: make([]Triangle, len(mesh.Faces)),
	}
	for i, v := range mesh.Vertices {
		m.vertices[i] = Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	for i, f := range mesh.Faces {
		tri := Triangle{Face: f, Index: i}
		for k := 0; k < 3; k++ {
			tri.Vertices[k] = m.vertices[f.Vertex[k]]
			if j := f.TexCoord[k]; j != NoIndex {
				tri.TexCoords[k] = m.texCoords[j]
			}
			if j := f.Normal[k]; j != NoIndex {
				tri.Normals[k] = m.normals[j]
			}
		}
		m.triangles[i] = tri
	}
	return m
}

// Triangles returns the model's triangles. The slice must not be modified.
func (m *Model) Triangles() []Triangle {
	return m.triangles
}

// Vertices returns the model-space vertex positions.
func (m *Model) Vertices() []Vec3 {
	return m.vertices
}

// RasterPoints returns the points produced by the most recent render of
// this model. They are overwritten by the next frame.
func (m *Model) RasterPoints() []RasterPoint {
	return m.rasterPoints
}

// Translate moves the model by the given offset.
func (m *Model) Translate(x, y, z float64) *Model {
	m.Transform.Position = m.Transform.Position.Add(Vec3{X: x, Y: y, Z: z})
	return m
}

// ScaleBy multiplies the model's scale per axis.
func (m *Model) ScaleBy(x, y, z float64) *Model {
	m.Transform.Scale = m.Transform.Scale.MulVec(Vec3{X: x, Y: y, Z: z})
	return m
}

// Rotate adds to the model's yaw and pitch, in radians.
func (m *Model) Rotate(yaw, pitch float64) *Model {
	m.Transform.Yaw += yaw
	m.Transform.Pitch += pitch
	return m
}

func (m *Model) String() string {
	return fmt.Sprintf("MODEL %s tris=%d %v", m.Name, len(m.triangles), m.Transform)
}
