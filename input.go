package graphlab

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource abstracts the per-frame mouse and keyboard state so the
// pointer state machine can run without a live window.
type inputSource interface {
	CursorPosition() (x, y float64)
	LeftPressed() bool
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
}

// ebitenInput reads input from Ebitengine.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenInput) LeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

// pointerState tracks one press/release interaction.
type pointerState struct {
	down bool
	hit  ControlID
	x, y float64
}

// Keyboard shortcuts.
const (
	keyLine       = ebiten.KeyL
	keyScatter    = ebiten.KeyP
	keyLabels     = ebiten.KeyC
	keyScreenshot = ebiten.KeyS
)

// processInput is called from Window.Update. Injected events take priority
// over real input; when one is consumed the real mouse is skipped for the
// frame.
func (w *Window) processInput() {
	if w.processInjectedInput() {
		return
	}
	x, y := w.input.CursorPosition()
	w.processPointer(x, y, w.input.LeftPressed())

	w.keyBuf = w.input.AppendJustPressedKeys(w.keyBuf[:0])
	for _, k := range w.keyBuf {
		w.processKey(k)
	}
}

// processPointer runs the click state machine: a press and a release over
// the same control activate it.
func (w *Window) processPointer(x, y float64, pressed bool) {
	ps := &w.pointer
	ps.x, ps.y = x, y

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hit = w.panel.HitTest(x, y)
	case !pressed && ps.down:
		if ps.hit != ControlNone && ps.hit == w.panel.HitTest(x, y) {
			w.panel.Activate(ps.hit)
		}
		ps.down = false
		ps.hit = ControlNone
	}
}

func (w *Window) processKey(k ebiten.Key) {
	switch k {
	case keyLine:
		w.panel.Modes.Select(int(PlotLine))
	case keyScatter:
		w.panel.Modes.Select(int(PlotScatter))
	case keyLabels:
		w.panel.Labels.Toggle()
	case keyScreenshot:
		w.Screenshot("graph")
	}
}
