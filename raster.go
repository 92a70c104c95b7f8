package g3d

import "math"

// SignedTriangleArea returns the oriented area of triangle (a, b, p).
//
// It is positive when p lies on the inner side of the directed edge a->b
// for triangles wound the way the rasterizer accepts, negative on the
// other side and zero on the line.
func SignedTriangleArea(a, b, p Vec2) float64 {
	ap := p.Sub(a)
	abPerp := b.Sub(a).Perpendicular()
	return ap.Dot(abPerp) / 2
}

// PointInTriangle reports whether p is inside triangle (a, b, c) and
// returns its barycentric weights for a, b and c.
//
// p is inside when it is on the inner side of all three edges (or on an
// edge) and the triangle's total signed area is strictly positive. The
// test is winding-sensitive: reversing the order of a, b, c flips which
// points are reported inside, and zero-area triangles contain nothing.
// Weights sum to 1 for any triangle with non-zero area, whatever its
// winding; a degenerate triangle returns zero weights.
func PointInTriangle(a, b, c, p Vec2) (bool, Vec3) {
	areaABP := SignedTriangleArea(a, b, p)
	areaBCP := SignedTriangleArea(b, c, p)
	areaCAP := SignedTriangleArea(c, a, p)
	total := areaABP + areaBCP + areaCAP
	if total == 0 {
		return false, Vec3{}
	}

	inside := total > 0 && areaABP >= 0 && areaBCP >= 0 && areaCAP >= 0
	inv := 1 / total
	weights := Vec3{X: areaBCP * inv, Y: areaCAP * inv, Z: areaABP * inv}
	return inside, weights
}

// rasterizeTriangle fills the pixels covered by one projected triangle,
// interpolating depth and attributes perspective-correctly, and writes
// every fragment that passes the depth test.
func (s *Scene) rasterizeTriangle(a, b, c *RasterPoint, tri *Triangle, shader Shader) {
	target := s.Target
	width, height := target.width, target.height

	minX := min(a.Screen.X, b.Screen.X, c.Screen.X)
	minY := min(a.Screen.Y, b.Screen.Y, c.Screen.Y)
	maxX := max(a.Screen.X, b.Screen.X, c.Screen.X)
	maxY := max(a.Screen.Y, b.Screen.Y, c.Screen.Y)
	if maxX < 0 || maxY < 0 || minX >= float64(width) || minY >= float64(height) {
		return
	}

	startX := clamp(int(math.Floor(minX)), 0, width-1)
	startY := clamp(int(math.Floor(minY)), 0, height-1)
	endX := clamp(int(math.Ceil(maxX)), 0, width-1)
	endY := clamp(int(math.Ceil(maxY)), 0, height-1)

	invDepth := Vec3{X: 1 / a.Depth, Y: 1 / b.Depth, Z: 1 / c.Depth}

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			p := Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			inside, w := PointInTriangle(a.Screen, b.Screen, c.Screen, p)
			if !inside {
				continue
			}

			// Attributes are linear in screen space only after dividing
			// by depth, so blend attr/z and rescale by the blended depth.
			wa, wb, wc := w.X*invDepth.X, w.Y*invDepth.Y, w.Z*invDepth.Z
			depth := 1 / (wa + wb + wc)
			if target.DepthTest(x, y, depth) {
				s.stats.DepthRejected++
				continue
			}

			texCoord := a.TexCoord.Mul(wa).Add(b.TexCoord.Mul(wb)).Add(c.TexCoord.Mul(wc)).Mul(depth)
			normal := a.Normal.Mul(wa).Add(b.Normal.Mul(wb)).Add(c.Normal.Mul(wc)).Mul(depth)

			target.PlotAtDepth(x, y, depth, shader.PixelColor(texCoord, normal, depth, tri))
			s.stats.PixelsShaded++
		}
	}
}
