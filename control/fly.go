// Package control drives a g3d camera from keyboard and mouse input.
//
// Input arrives through a gpucontext.EventSource, so the same controller
// works with any host window that can produce those events.
package control

import (
	"math"
	"sync"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/g3d"
)

// Defaults for a new FlyController.
const (
	DefaultSpeed       = 3.0 // world units per second
	DefaultSensitivity = 0.2 // radians per pixel of mouse travel per second of frame time
	DefaultPitchLimit  = 85.0
)

// FlyController moves a camera like a free-flying observer: W/S move
// along the view direction, D/A strafe, E/Q rise and sink along the
// camera's up axis, and mouse movement turns the camera.
//
// Event callbacks may run on a different goroutine than Update.
type FlyController struct {
	Camera      *g3d.Camera
	Speed       float64
	Sensitivity float64

	// MinPitch and MaxPitch bound the camera pitch, in radians.
	MinPitch, MaxPitch float64

	mu        sync.Mutex
	held      map[gpucontext.Key]bool
	mouse     g3d.Vec2 // travel since the last Update
	lastMouse g3d.Vec2
	haveMouse bool
}

// NewFlyController returns a controller for cam with default settings.
func NewFlyController(cam *g3d.Camera) *FlyController {
	limit := g3d.Radians(DefaultPitchLimit)
	return &FlyController{
		Camera:      cam,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		MinPitch:    -limit,
		MaxPitch:    limit,
		held:        make(map[gpucontext.Key]bool),
	}
}

// Attach registers the controller's callbacks on src.
func (c *FlyController) Attach(src gpucontext.EventSource) {
	src.OnKeyPress(func(k gpucontext.Key, _ gpucontext.Modifiers) { c.SetKey(k, true) })
	src.OnKeyRelease(func(k gpucontext.Key, _ gpucontext.Modifiers) { c.SetKey(k, false) })
	src.OnMouseMove(c.MouseMoved)
	src.OnFocus(func(focused bool) {
		if !focused {
			c.Reset()
		}
	})
}

// SetKey records a key as held or released.
func (c *FlyController) SetKey(k gpucontext.Key, down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if down {
		c.held[k] = true
	} else {
		delete(c.held, k)
	}
}

// MouseMoved records an absolute cursor position. The first position
// only establishes the reference point.
func (c *FlyController) MouseMoved(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := g3d.Vec2{X: x, Y: y}
	if c.haveMouse {
		c.mouse = c.mouse.Add(p.Sub(c.lastMouse))
	}
	c.lastMouse = p
	c.haveMouse = true
}

// Reset releases all keys and drops pending mouse travel.
func (c *FlyController) Reset() {
	c.mu.Lock()
	clear(c.held)
	c.mu.Unlock()
	c.ForgetMouse()
}

// ForgetMouse drops pending mouse travel; the next cursor position
// becomes the new reference. Hosts call it when the cursor jumps, for
// example when it is captured or released.
func (c *FlyController) ForgetMouse() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouse = g3d.Vec2{}
	c.haveMouse = false
}

// Update applies the input gathered since the previous call.
func (c *FlyController) Update(delta time.Duration) {
	c.mu.Lock()
	mouse := c.mouse
	c.mouse = g3d.Vec2{}
	var move [3]float64 // right, up, forward
	axis := func(pos, neg gpucontext.Key, i int) {
		if c.held[pos] {
			move[i]++
		}
		if c.held[neg] {
			move[i]--
		}
	}
	axis(gpucontext.KeyD, gpucontext.KeyA, 0)
	axis(gpucontext.KeyE, gpucontext.KeyQ, 1)
	axis(gpucontext.KeyW, gpucontext.KeyS, 2)
	c.mu.Unlock()

	dt := delta.Seconds()
	tr := &c.Camera.Transform

	turn := mouse.Mul(c.Sensitivity * dt)
	tr.Pitch = math.Max(c.MinPitch, math.Min(c.MaxPitch, tr.Pitch-turn.Y))
	tr.Yaw -= turn.X

	right, up, forward := tr.Basis()
	dir := right.Mul(move[0]).Add(up.Mul(move[1])).Add(forward.Mul(move[2]))
	if dir.IsZero() {
		return
	}
	tr.Position = tr.Position.Add(dir.Normalize().Mul(c.Speed * dt))
}
