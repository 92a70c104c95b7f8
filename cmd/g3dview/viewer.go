package main

import (
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/control"
	"github.com/gogpu/g3d/hud"
	"github.com/gogpu/g3d/scenefile"
)

// viewer is the ebiten.Game that renders a built scene each tick.
type viewer struct {
	built  *scenefile.Built
	ctrl   *control.FlyController
	events *ebitenEvents
	frame  *ebiten.Image

	tick     time.Duration
	index    uint64
	hud      bool
	captured bool
	quit     bool
}

func newViewer(built *scenefile.Built, tps int, showHUD bool) *viewer {
	v := &viewer{
		built:  built,
		ctrl:   control.NewFlyController(built.Camera),
		events: newEbitenEvents(),
		tick:   time.Second / time.Duration(tps),
		hud:    showHUD,
	}
	v.ctrl.Attach(v.events)
	v.events.OnKeyPress(v.handleKey)
	v.events.OnMousePress(func(b gpucontext.MouseButton, _, _ float64) {
		if b == gpucontext.MouseButtonLeft {
			v.setCaptured(true)
		}
	})
	return v
}

func (v *viewer) handleKey(k gpucontext.Key, _ gpucontext.Modifiers) {
	switch k {
	case gpucontext.KeyEscape:
		if v.captured {
			v.setCaptured(false)
		} else {
			v.quit = true
		}
	case gpucontext.KeyF1:
		v.hud = !v.hud
	}
}

// setCaptured locks or frees the cursor. Mouse-look only applies while
// the cursor is captured.
func (v *viewer) setCaptured(on bool) {
	if on == v.captured {
		return
	}
	v.captured = on
	v.ctrl.ForgetMouse()
	mode := ebiten.CursorModeVisible
	if on {
		mode = ebiten.CursorModeCaptured
	}
	ebiten.SetCursorMode(mode)
}

// step advances the scene by one tick and renders it.
func (v *viewer) step() {
	if !v.captured {
		v.ctrl.ForgetMouse()
	}
	v.ctrl.Update(v.tick)
	v.built.Render(g3d.Frame{
		Index: v.index,
		Time:  time.Duration(v.index) * v.tick,
		Delta: v.tick,
	})
	v.index++
	if v.hud {
		hud.Draw(v.built.Scene.Target, hud.Status(v.built.Scene))
	}
}

func (v *viewer) Update() error {
	v.events.poll()
	if v.quit {
		return ebiten.Termination
	}
	v.step()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	rt := v.built.Scene.Target
	if v.frame == nil {
		v.frame = ebiten.NewImage(rt.Width(), rt.Height())
	}
	v.frame.WritePixels(rt.Pixels())
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	rt := v.built.Scene.Target
	return rt.Width(), rt.Height()
}
