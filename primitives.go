package g3d

// cubeFaces lists, for each face of a cube, its outward normal and the
// right/up axes as seen from outside the face. right x up = -normal, which
// winds every face clockwise when viewed from outside: the orientation
// the rasterizer treats as front-facing.
var cubeFaces = [6]struct{ normal, right, up Vec3 }{
	{normal: V3(0, 0, -1), right: V3(1, 0, 0), up: V3(0, 1, 0)},
	{normal: V3(0, 0, 1), right: V3(-1, 0, 0), up: V3(0, 1, 0)},
	{normal: V3(1, 0, 0), right: V3(0, 0, 1), up: V3(0, 1, 0)},
	{normal: V3(-1, 0, 0), right: V3(0, 0, -1), up: V3(0, 1, 0)},
	{normal: V3(0, 1, 0), right: V3(1, 0, 0), up: V3(0, 0, 1)},
	{normal: V3(0, -1, 0), right: V3(1, 0, 0), up: V3(0, 0, -1)},
}

// quadTexCoords are shared by every quad: bottom-left, top-left,
// top-right, bottom-right.
var quadTexCoords = []Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// CubeMesh returns an axis-aligned cube of the given edge length centred
// on the origin. Each face has its own four vertices, a flat normal and
// texture coordinates spanning the whole texture.
func CubeMesh(size float64) Mesh {
	h := size / 2
	mesh := Mesh{TexCoords: append([]Vec2(nil), quadTexCoords...)}
	for _, f := range cubeFaces {
		addQuad(&mesh, f.normal.Mul(h), f.right.Mul(h), f.up.Mul(h), f.normal)
	}
	return mesh
}

// PlaneMesh returns a horizontal square at height y with the given half
// extent, facing up.
func PlaneMesh(halfSize, y float64) Mesh {
	mesh := Mesh{TexCoords: append([]Vec2(nil), quadTexCoords...)}
	addQuad(&mesh, V3(0, y, 0), V3(halfSize, 0, 0), V3(0, 0, halfSize), V3(0, 1, 0))
	return mesh
}

// addQuad appends the quad centre±right±up as two triangles wound
// bottom-left, top-left, top-right and bottom-left, top-right, bottom-right.
func addQuad(mesh *Mesh, centre, right, up, normal Vec3) {
	base := len(mesh.Vertices)
	mesh.AddVertex(centre.Sub(right).Sub(up))
	mesh.AddVertex(centre.Sub(right).Add(up))
	mesh.AddVertex(centre.Add(right).Add(up))
	mesh.AddVertex(centre.Add(right).Sub(up))

	mesh.Normals = append(mesh.Normals, normal)
	n := len(mesh.Normals) - 1

	for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		mesh.Faces = append(mesh.Faces, Face{
			Vertex:   [3]int{base + tri[0], base + tri[1], base + tri[2]},
			TexCoord: [3]int{tri[0], tri[1], tri[2]},
			Normal:   [3]int{n, n, n},
		})
	}
}
