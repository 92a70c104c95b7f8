package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]gpucontext.Key{
	ebiten.KeyW:          gpucontext.KeyW,
	ebiten.KeyA:          gpucontext.KeyA,
	ebiten.KeyS:          gpucontext.KeyS,
	ebiten.KeyD:          gpucontext.KeyD,
	ebiten.KeyQ:          gpucontext.KeyQ,
	ebiten.KeyE:          gpucontext.KeyE,
	ebiten.KeyEscape:     gpucontext.KeyEscape,
	ebiten.KeyTab:        gpucontext.KeyTab,
	ebiten.KeySpace:      gpucontext.KeySpace,
	ebiten.KeyF1:         gpucontext.KeyF1,
	ebiten.KeyArrowUp:    gpucontext.KeyUp,
	ebiten.KeyArrowDown:  gpucontext.KeyDown,
	ebiten.KeyArrowLeft:  gpucontext.KeyLeft,
	ebiten.KeyArrowRight: gpucontext.KeyRight,
	ebiten.KeyShiftLeft:  gpucontext.KeyLeftShift,
	ebiten.KeyShiftRight: gpucontext.KeyRightShift,
}

// ebitenEvents turns ebiten's polled input state into gpucontext
// callbacks. Events are delivered from poll, on the game's Update
// goroutine.
type ebitenEvents struct {
	gpucontext.NullEventSource

	keyPress   []func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease []func(gpucontext.Key, gpucontext.Modifiers)
	mouseMove  []func(x, y float64)
	mousePress []func(gpucontext.MouseButton, float64, float64)
	focus      []func(bool)

	keys    []ebiten.Key
	cursorX int
	cursorY int
	focused bool
}

func newEbitenEvents() *ebitenEvents {
	return &ebitenEvents{focused: true}
}

func (e *ebitenEvents) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	e.keyPress = append(e.keyPress, fn)
}

func (e *ebitenEvents) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) {
	e.keyRelease = append(e.keyRelease, fn)
}

func (e *ebitenEvents) OnMouseMove(fn func(x, y float64)) {
	e.mouseMove = append(e.mouseMove, fn)
}

func (e *ebitenEvents) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	e.mousePress = append(e.mousePress, fn)
}

func (e *ebitenEvents) OnFocus(fn func(bool)) {
	e.focus = append(e.focus, fn)
}

// poll reads this tick's input from ebiten and dispatches it.
func (e *ebitenEvents) poll() {
	e.setFocus(ebiten.IsFocused())

	mods := currentModifiers()
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	e.pressKeys(e.keys, mods, true)
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	e.pressKeys(e.keys, mods, false)

	x, y := ebiten.CursorPosition()
	e.moveCursor(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		for _, fn := range e.mousePress {
			fn(gpucontext.MouseButtonLeft, float64(x), float64(y))
		}
	}
}

func (e *ebitenEvents) pressKeys(keys []ebiten.Key, mods gpucontext.Modifiers, down bool) {
	handlers := e.keyRelease
	if down {
		handlers = e.keyPress
	}
	for _, k := range keys {
		gk, ok := keyMap[k]
		if !ok {
			continue
		}
		for _, fn := range handlers {
			fn(gk, mods)
		}
	}
}

func (e *ebitenEvents) moveCursor(x, y int) {
	if x == e.cursorX && y == e.cursorY {
		return
	}
	e.cursorX, e.cursorY = x, y
	for _, fn := range e.mouseMove {
		fn(float64(x), float64(y))
	}
}

func (e *ebitenEvents) setFocus(focused bool) {
	if focused == e.focused {
		return
	}
	e.focused = focused
	for _, fn := range e.focus {
		fn(focused)
	}
}

func currentModifiers() gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= gpucontext.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= gpucontext.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= gpucontext.ModAlt
	}
	return m
}
