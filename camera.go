package g3d

import "fmt"

// Camera defines the view space the scene is projected from.
// Its Transform maps view space (+Z forward, +Y up, +X right) to world space.
//
// The camera is owned by the host: input handling may move it between
// frames, and the Scene reads it once per Render.
type Camera struct {
	FOV       float64 // vertical field of view, radians
	Transform Transform
}

// NewCamera returns a camera at the origin looking down +Z with the given
// vertical field of view in degrees.
func NewCamera(fovDegrees float64) *Camera {
	return &Camera{
		FOV:       Radians(fovDegrees),
		Transform: NewTransform(),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf("CAMERA fov=%.0f %v", Degrees(c.FOV), c.Transform)
}
