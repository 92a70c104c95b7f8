package g3d

// DefaultNearClip is the default distance of the near clipping plane
// from the camera, in view-space units.
const DefaultNearClip = 0.01

// ClipVertex is a triangle corner in view space together with the
// attributes that are interpolated when an edge is cut by the near plane.
type ClipVertex struct {
	Position Vec3
	TexCoord Vec2
	Normal   Vec3
}

// lerpClip interpolates every field of a ClipVertex.
func lerpClip(a, b ClipVertex, t float64) ClipVertex {
	return ClipVertex{
		Position: a.Position.Lerp(b.Position, t),
		TexCoord: a.TexCoord.Lerp(b.TexCoord, t),
		Normal:   a.Normal.Lerp(b.Normal, t),
	}
}

// ClipTriangle clips a view-space triangle against the plane z = near and
// appends the surviving triangles to dst, three vertices per triangle,
// preserving the original winding. A vertex with z <= near is behind the
// plane.
//
//   - no vertex behind: the triangle is appended unchanged
//   - one behind: the remaining quad is appended as two triangles
//   - two behind: the visible tip is appended as one triangle
//   - all behind: nothing is appended
func ClipTriangle(near float64, v [3]ClipVertex, dst []ClipVertex) []ClipVertex {
	var behind [3]bool
	clipCount := 0
	for i := range v {
		if v[i].Position.Z <= near {
			behind[i] = true
			clipCount++
		}
	}

	switch clipCount {
	case 0:
		return append(dst, v[0], v[1], v[2])

	case 1:
		i := 0
		for !behind[i] {
			i++
		}
		p, a, b := v[i], v[(i+1)%3], v[(i+2)%3]
		fA := (near - p.Position.Z) / (a.Position.Z - p.Position.Z)
		fB := (near - p.Position.Z) / (b.Position.Z - p.Position.Z)
		edgeA := lerpClip(p, a, fA)
		edgeB := lerpClip(p, b, fB)
		return append(dst,
			edgeB, edgeA, b,
			edgeA, a, b,
		)

	case 2:
		i := 0
		for behind[i] {
			i++
		}
		n, a, b := v[i], v[(i+1)%3], v[(i+2)%3]
		fA := (near - n.Position.Z) / (a.Position.Z - n.Position.Z)
		fB := (near - n.Position.Z) / (b.Position.Z - n.Position.Z)
		edgeA := lerpClip(n, a, fA)
		edgeB := lerpClip(n, b, fB)
		return append(dst, edgeB, n, edgeA)
	}

	return dst
}
