package scenefile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/assets"
	"github.com/gogpu/g3d/obj"
	"github.com/gogpu/g3d/stl"
)

// Built is a scene assembled from a Description.
type Built struct {
	Scene  *g3d.Scene
	Camera *g3d.Camera
	Models []*g3d.Model

	spins [][2]float64 // radians per second, parallel to Models
}

// Build loads every mesh and texture the description names and returns
// a scene rendering into target. loader may be nil, in which case a
// private one is used.
func (d *Description) Build(target *g3d.RenderTarget, loader *assets.Loader, opts ...g3d.SceneOption) (*Built, error) {
	if loader == nil {
		loader = assets.NewLoader(0)
	}

	cam := g3d.NewCamera(d.Camera.FOV)
	cam.Transform.Position = d.Camera.Position.vec3()
	cam.Transform.Yaw = g3d.Radians(d.Camera.Yaw)
	cam.Transform.Pitch = g3d.Radians(d.Camera.Pitch)

	light := DefaultLight.vec3().Normalize()
	if d.Light != nil && *d.Light != (Vec{}) {
		light = d.Light.vec3().Normalize()
	}

	b := &Built{Camera: cam}
	for i := range d.Models {
		md := &d.Models[i]
		mesh, mtls, err := d.loadMesh(md)
		if err != nil {
			return nil, fmt.Errorf("scenefile: model %q: %w", md.Name, err)
		}
		shader, err := d.buildShader(md, light, mtls, loader)
		if err != nil {
			return nil, fmt.Errorf("scenefile: model %q: %w", md.Name, err)
		}

		m := g3d.NewModel(md.Name, mesh, shader)
		m.Transform.Position = md.Position.vec3()
		if md.Scale != nil {
			m.Transform.Scale = md.Scale.vec3()
		}
		m.Transform.Yaw = g3d.Radians(md.Yaw)
		m.Transform.Pitch = g3d.Radians(md.Pitch)

		b.Models = append(b.Models, m)
		b.spins = append(b.spins, [2]float64{g3d.Radians(md.Spin[0]), g3d.Radians(md.Spin[1])})
	}

	if d.NearClip > 0 {
		opts = append([]g3d.SceneOption{g3d.WithNearClip(d.NearClip)}, opts...)
	}
	b.Scene = g3d.NewScene(target, cam, b.Models, opts...)
	return b, nil
}

// loadMesh returns the model's mesh and, for OBJ meshes, the materials
// of its mtllib files.
func (d *Description) loadMesh(md *ModelDesc) (g3d.Mesh, map[string]obj.Material, error) {
	switch md.Mesh {
	case MeshCube:
		return g3d.CubeMesh(md.Size), nil, nil
	case MeshPlane:
		return g3d.PlaneMesh(md.Size, 0), nil, nil
	}

	path := d.resolve(md.Mesh)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		res, err := obj.Load(path)
		if err != nil {
			return g3d.Mesh{}, nil, err
		}
		mtls := make(map[string]obj.Material)
		for _, lib := range res.MaterialLibs {
			libPath := filepath.Join(filepath.Dir(path), lib)
			lm, err := obj.LoadMTL(libPath)
			if err != nil {
				g3d.Logger().Warn("material library unavailable", "path", libPath, "err", err)
				continue
			}
			for name, m := range lm {
				mtls[name] = m
			}
		}
		return res.Mesh, mtls, nil

	case ".stl":
		mesh, err := stl.Load(path)
		return mesh, nil, err
	}
	return g3d.Mesh{}, nil, fmt.Errorf("unsupported mesh %q", md.Mesh)
}

func (d *Description) buildShader(md *ModelDesc, light g3d.Vec3, mtls map[string]obj.Material, loader *assets.Loader) (g3d.Shader, error) {
	sd := md.Shader
	texture := func() (*g3d.Texture, error) {
		if sd.Texture == "" {
			return nil, fmt.Errorf("shader %q needs a texture", sd.Kind)
		}
		return loader.GetOrLoad(d.resolve(sd.Texture))
	}

	switch sd.Kind {
	case KindRandom:
		if sd.Seed != 0 {
			return g3d.NewRandomShaderSeed(sd.Seed), nil
		}
		return g3d.NewRandomShader(), nil

	case KindLit:
		return &g3d.LitShader{LightDirection: light}, nil

	case KindTexture:
		tex, err := texture()
		if err != nil {
			return nil, err
		}
		return &g3d.TextureShader{Texture: tex}, nil

	case KindLitTexture:
		tex, err := texture()
		if err != nil {
			return nil, err
		}
		return &g3d.LitTextureShader{Texture: tex, LightDirection: light}, nil

	case KindMaterial:
		dir := filepath.Dir(d.resolve(md.Mesh))
		return &g3d.MaterialShader{Materials: loader.LoadMaterials(dir, mtls)}, nil

	case KindDepth:
		return &g3d.DepthShader{Near: sd.Near, Far: sd.Far}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShader, sd.Kind)
}

// Animate advances every model by its spin rate over frame.Delta.
func (b *Built) Animate(frame g3d.Frame) {
	dt := frame.Delta.Seconds()
	for i, m := range b.Models {
		if s := b.spins[i]; s != ([2]float64{}) {
			m.Rotate(s[0]*dt, s[1]*dt)
		}
	}
}

// Render animates the models for frame and renders it.
func (b *Built) Render(frame g3d.Frame) []uint8 {
	b.Animate(frame)
	return b.Scene.Render(frame)
}
