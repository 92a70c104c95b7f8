// Package g3d is a pure Go software rasterizer for triangle meshes.
//
// # Overview
//
// g3d turns a set of transformed meshes and a camera into a packed RGBA8
// color buffer and a matching depth buffer, entirely on the CPU. It does
// perspective projection, near-plane clipping, perspective-correct
// attribute interpolation and depth testing.
//
// # Quick Start
//
//	target, _ := g3d.NewRenderTarget(640, 480)
//	camera := g3d.NewCamera(60)
//	camera.Transform.Position = g3d.V3(0, 0, -5)
//
//	cube := g3d.NewModel("cube", g3d.CubeMesh(1), &g3d.LitShader{
//	    LightDirection: g3d.V3(0, -1, -1).Normalize(),
//	})
//
//	scene := g3d.NewScene(target, camera, []*g3d.Model{cube})
//	pixels := scene.Render(g3d.Frame{})
//
// # Pipeline
//
// For every triangle of every model, Render:
//   - maps the vertices model -> world -> view space
//   - clips the triangle against the near plane, emitting 0, 1 or 2 triangles
//   - projects the survivors to screen space, keeping view-space depth
//   - rasterizes them with an edge-function inside test, depth tests each
//     pixel and calls the model's Shader for the ones that pass
//
// # Coordinate System
//
// View space has +X right, +Y up and +Z forward. Screen positions are
// centre + view.xy * pixelsPerWorldUnit, so view +Y maps to increasing
// row index. A triangle is drawn only if its vertices are clockwise as
// seen from the camera; the built-in meshes follow that convention.
//
// # Host Integration
//
// A Scene never runs its own loop. The host calls Render once per frame
// with a Frame describing timing, presents the returned buffer, and must
// not start the next frame until it has finished reading the previous one.
// Sub-packages provide the pieces a host usually needs: obj and stl parse
// mesh files, assets decodes textures, scenefile loads YAML scene
// descriptions, control moves the camera from input events and hud draws
// debug text over a frame.
package g3d
