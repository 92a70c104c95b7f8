package g3d

// SceneOption configures a Scene during creation.
//
// Example:
//
//	scene := g3d.NewScene(target, camera, models,
//	    g3d.WithNearClip(0.1),
//	)
type SceneOption func(*sceneOptions)

// sceneOptions holds optional configuration for Scene creation.
type sceneOptions struct {
	nearClip    float64
	clearTarget bool
}

// defaultOptions returns the default scene options.
func defaultOptions() sceneOptions {
	return sceneOptions{
		nearClip:    DefaultNearClip,
		clearTarget: true,
	}
}

// WithNearClip sets the distance of the near clipping plane. Geometry at
// or closer than d in view space is clipped away. Non-positive values are
// ignored, since projection divides by view-space depth.
func WithNearClip(d float64) SceneOption {
	return func(o *sceneOptions) {
		if d > 0 {
			o.nearClip = d
		}
	}
}

// WithoutClear stops Render from clearing the target, for hosts that
// clear it themselves or draw several scenes into one target.
func WithoutClear() SceneOption {
	return func(o *sceneOptions) {
		o.clearTarget = false
	}
}
