package g3d

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// Frame is the per-frame context supplied by the host loop.
type Frame struct {
	Index uint64        // frame counter, starting at 0
	Time  time.Duration // time since the host started rendering
	Delta time.Duration // time since the previous frame
}

// Scene renders a set of models, as seen from a camera, into a render target.
//
// A Scene does not own its loop: the host calls Render once per frame and
// must not call it again, or read Pixels concurrently, until it is done
// with the previous buffer. Nothing in a Scene is safe for concurrent use.
type Scene struct {
	Target *RenderTarget
	Camera *Camera
	Models []*Model

	nearClip    float64
	clearTarget bool

	stats Stats
	clip  []ClipVertex // per-triangle clipping scratch, reused
}

// NewScene creates a scene. Options are applied in order.
func NewScene(target *RenderTarget, camera *Camera, models []*Model, opts ...SceneOption) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		Target:      target,
		Camera:      camera,
		Models:      models,
		nearClip:    o.nearClip,
		clearTarget: o.clearTarget,
		clip:        make([]ClipVertex, 0, 6),
	}
}

// NearClip returns the distance of the near clipping plane.
func (s *Scene) NearClip() float64 {
	return s.nearClip
}

// Stats returns the counters collected during the last Render.
func (s *Scene) Stats() Stats {
	return s.stats
}

// Render draws one frame and returns the target's packed RGBA8 buffer.
// The target is cleared first unless the scene was built WithoutClear.
func (s *Scene) Render(frame Frame) []uint8 {
	s.stats = Stats{Frame: frame.Index}
	if s.clearTarget {
		s.Target.Clear()
	}

	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	for _, m := range s.Models {
		if debug {
			log.Debug("render model", "model", m.String())
		}
		s.renderModel(m)
	}
	if debug {
		log.Debug("frame done", "frame", frame.Index, "stats", s.stats.String())
	}
	return s.Target.Pixels()
}

// renderModel clips and projects every triangle of m into m.rasterPoints,
// then rasterizes the points three at a time.
func (s *Scene) renderModel(m *Model) {
	cam := s.Camera
	centre := s.Target.Size().Div(2)
	screenHeightWorld := math.Tan(cam.FOV/2) * 2
	pixelsPerWorldUnitAtUnitDepth := float64(s.Target.height) / screenHeightWorld

	m.rasterPoints = m.rasterPoints[:0]
	for i := range m.triangles {
		tri := &m.triangles[i]
		s.stats.Triangles++

		var view [3]ClipVertex
		for k := 0; k < 3; k++ {
			world := m.Transform.ToWorldPoint(tri.Vertices[k])
			view[k] = ClipVertex{
				Position: cam.Transform.ToLocalPoint(world),
				TexCoord: tri.TexCoords[k],
				Normal:   tri.Normals[k],
			}
		}

		s.clip = ClipTriangle(s.nearClip, view, s.clip[:0])
		switch len(s.clip) {
		case 0:
			s.stats.Discarded++
		case 6:
			s.stats.Split++
		default:
			if view[0].Position.Z <= s.nearClip || view[1].Position.Z <= s.nearClip || view[2].Position.Z <= s.nearClip {
				s.stats.Trimmed++
			}
		}

		for _, v := range s.clip {
			ppw := pixelsPerWorldUnitAtUnitDepth / v.Position.Z
			m.rasterPoints = append(m.rasterPoints, RasterPoint{
				Screen:   centre.Add(v.Position.XY().Mul(ppw)),
				Depth:    v.Position.Z,
				TexCoord: v.TexCoord,
				Normal:   v.Normal,
				Triangle: i,
			})
		}
	}

	shader := m.Shader
	if shader == nil {
		shader = missingShader{}
	}
	points := m.rasterPoints
	for i := 0; i+2 < len(points); i += 3 {
		tri := &m.triangles[points[i].Triangle]
		s.rasterizeTriangle(&points[i], &points[i+1], &points[i+2], tri, shader)
	}
}
