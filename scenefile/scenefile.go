// Package scenefile builds g3d scenes from YAML descriptions.
//
// A description names a camera, a light direction and a list of models:
//
//	camera:
//	  fov: 60
//	  position: [0, 1, -4]
//	  pitch: -10
//	light: [0.3, 1, -0.5]
//	models:
//	  - name: crate
//	    mesh: cube
//	    size: 1
//	    spin: [45, 0]
//	    shader: {kind: lit-texture, texture: crate.png}
//	  - name: ship
//	    mesh: models/ship.obj
//	    shader: {kind: material}
//
// Angles are in degrees and spin rates in degrees per second. Relative
// mesh and texture paths resolve against the description's directory.
package scenefile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/g3d"
)

// ErrUnknownShader is returned by Build for an unrecognised shader kind.
var ErrUnknownShader = errors.New("scenefile: unknown shader kind")

// Shader kinds.
const (
	KindRandom     = "random"
	KindLit        = "lit"
	KindTexture    = "texture"
	KindLitTexture = "lit-texture"
	KindMaterial   = "material"
	KindDepth      = "depth"
)

// Built-in mesh names.
const (
	MeshCube  = "cube"
	MeshPlane = "plane"
)

// Vec is an x, y, z triple.
type Vec [3]float64

func (v Vec) vec3() g3d.Vec3 { return g3d.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Description is a parsed scene file.
type Description struct {
	Camera   CameraDesc  `yaml:"camera"`
	Light    *Vec        `yaml:"light,omitempty"` // direction toward the light
	NearClip float64     `yaml:"near_clip,omitempty"`
	Models   []ModelDesc `yaml:"models"`

	// Dir is the directory relative paths resolve against. Load sets it
	// to the file's directory.
	Dir string `yaml:"-"`
}

// CameraDesc places the camera.
type CameraDesc struct {
	FOV      float64 `yaml:"fov"`
	Position Vec     `yaml:"position"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
}

// ModelDesc describes one model instance.
type ModelDesc struct {
	Name string `yaml:"name"`

	// Mesh is "cube", "plane" or a path to an .obj or .stl file.
	Mesh string `yaml:"mesh"`

	// Size is the cube edge length or the plane half extent. Defaults to 1.
	Size float64 `yaml:"size,omitempty"`

	Position Vec        `yaml:"position"`
	Scale    *Vec       `yaml:"scale,omitempty"`
	Yaw      float64    `yaml:"yaw"`
	Pitch    float64    `yaml:"pitch"`
	Shader   ShaderDesc `yaml:"shader"`

	// Spin is the yaw and pitch rate applied by Built.Animate.
	Spin [2]float64 `yaml:"spin,omitempty"`
}

// ShaderDesc selects and configures a shader.
type ShaderDesc struct {
	Kind    string  `yaml:"kind"`
	Texture string  `yaml:"texture,omitempty"`
	Seed    uint64  `yaml:"seed,omitempty"`
	Near    float64 `yaml:"near,omitempty"`
	Far     float64 `yaml:"far,omitempty"`
}

// Defaults applied by Parse.
const (
	DefaultFOV      = 60.0
	DefaultDepthFar = 20.0
)

// DefaultLight points up and toward a camera looking down +Z.
var DefaultLight = Vec{0, 1, -1}

// Parse decodes a YAML description and fills in defaults.
func Parse(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	d.applyDefaults()
	for i, m := range d.Models {
		if m.Mesh == "" {
			return nil, fmt.Errorf("scenefile: model %d (%q): no mesh", i, m.Name)
		}
	}
	return &d, nil
}

//go:embed default.yaml
var defaultScene []byte

// Default returns the built-in demo scene.
func Default() *Description {
	d, err := Parse(defaultScene)
	if err != nil {
		panic(err)
	}
	return d
}

// Load reads and parses the description at path.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Dir = filepath.Dir(path)
	g3d.Logger().Info("scene description loaded", "path", path, "models", len(d.Models))
	return d, nil
}

// Marshal encodes d as YAML.
func (d *Description) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func (d *Description) applyDefaults() {
	if d.Camera.FOV <= 0 {
		d.Camera.FOV = DefaultFOV
	}
	if d.Light == nil {
		l := DefaultLight
		d.Light = &l
	}
	for i := range d.Models {
		m := &d.Models[i]
		if m.Name == "" {
			m.Name = fmt.Sprintf("model%d", i)
		}
		if m.Size <= 0 {
			m.Size = 1
		}
		if m.Scale == nil {
			m.Scale = &Vec{1, 1, 1}
		}
		if m.Shader.Kind == "" {
			m.Shader.Kind = KindRandom
		}
		if m.Shader.Kind == KindDepth && m.Shader.Far <= m.Shader.Near {
			m.Shader.Far = m.Shader.Near + DefaultDepthFar
		}
	}
}

// resolve makes a relative path relative to d.Dir.
func (d *Description) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || d.Dir == "" {
		return path
	}
	return filepath.Join(d.Dir, path)
}
