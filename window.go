package graphlab

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Window is the plot application. It implements ebiten.Game: Layout tracks
// the client size, Update handles input and animation, and Draw repaints the
// plot into a cached frame only after something invalidated it.
type Window struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	samples  []Sample
	renderer *Renderer
	panel    *ControlPanel
	fonts    *FontSet
	input    inputSource

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	keyBuf      []ebiten.Key
	testRunner  *TestRunner
	tween       *markerTween
	fps         *fpsOverlay

	screenshotQueue []string
	written         []string

	clientW, clientH int
	frame            *ebiten.Image
	dirty            bool
	debug            bool
	quit             bool
	closed           bool
}

// NewWindow samples the configured domain once and builds the renderer,
// control panel and font set. The samples are never modified afterwards.
func NewWindow(cfg Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	samples, err := Generate(CubedCosine, cfg.Domain)
	if err != nil {
		return nil, err
	}
	fonts, err := DefaultFontSet()
	if err != nil {
		return nil, err
	}

	r := NewRenderer(cfg.Plot.Title)
	r.Mode = cfg.Plot.Mode
	r.ShowLabels = cfg.Plot.ShowLabels

	w := &Window{
		ScreenshotDir: cfg.ScreenshotDir,
		samples:       samples,
		renderer:      r,
		panel:         NewControlPanel(cfg.Plot.Mode, cfg.Plot.ShowLabels),
		fonts:         fonts,
		input:         ebitenInput{},
		pointer:       pointerState{hit: ControlNone},
		clientW:       cfg.Window.Width,
		clientH:       cfg.Window.Height,
		dirty:         true,
		debug:         cfg.Debug,
	}
	if w.ScreenshotDir == "" {
		w.ScreenshotDir = DefaultScreenshotDir
	}
	w.panel.Modes.OnChange = func(i int) { w.SetMode(PlotMode(i)) }
	w.panel.Labels.OnChange = w.SetShowLabels
	return w, nil
}

// Samples returns a copy of the plotted samples.
func (w *Window) Samples() []Sample { return slices.Clone(w.samples) }

// Mode returns the current plot mode.
func (w *Window) Mode() PlotMode { return w.renderer.Mode }

// ShowLabels reports whether coordinate labels are drawn.
func (w *Window) ShowLabels() bool { return w.renderer.ShowLabels }

// SetMode switches between line and scatter drawing and starts the marker
// resize animation.
func (w *Window) SetMode(m PlotMode) {
	if m == w.renderer.Mode {
		return
	}
	from := w.renderer.markerRadius()
	w.renderer.Mode = m
	w.panel.Modes.Selected = int(m)
	w.tween = newMarkerTween(w.renderer, from, ease.OutQuad)
	w.Invalidate()
}

// SetShowLabels turns coordinate labels on or off.
func (w *Window) SetShowLabels(show bool) {
	if show == w.renderer.ShowLabels {
		return
	}
	w.renderer.ShowLabels = show
	w.panel.Labels.Checked = show
	w.Invalidate()
}

// Invalidate schedules a repaint on the next Draw.
func (w *Window) Invalidate() { w.dirty = true }

// Dirty reports whether a repaint is pending.
func (w *Window) Dirty() bool { return w.dirty }

// Quit ends the game loop once queued screenshots have been written.
func (w *Window) Quit() { w.quit = true }

// PlotArea returns the plot frame for the current client size.
func (w *Window) PlotArea() Rect {
	return PlotArea(float64(w.clientW), float64(w.clientH), PanelHeight, PlotPadding)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInput()

	if w.tween != nil {
		w.tween.Update(float32(dt))
		w.Invalidate()
		if w.tween.Done {
			w.tween = nil
		}
	}
	if w.fps != nil {
		w.fps.update(dt)
	}

	if w.quit && len(w.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	fw, fh := max(w.clientW, 1), max(w.clientH, 1)
	if w.frame == nil || w.frame.Bounds().Dx() != fw || w.frame.Bounds().Dy() != fh {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.frame = ebiten.NewImage(fw, fh)
		w.dirty = true
	}

	if w.dirty {
		start := time.Now()
		c := NewEbitenCanvas(w.frame, w.fonts)
		w.frame.Clear()
		area := w.paint(c)
		w.dirty = false
		w.debugLog(paintStats{
			paintTime: time.Since(start),
			drawCalls: c.DrawCalls,
			samples:   len(w.samples),
			area:      area,
		})
	}

	screen.DrawImage(w.frame, nil)
	if w.fps != nil {
		w.fps.draw(screen)
	}
	w.flushScreenshots(w.frame)
}

// Layout implements ebiten.Game. A size change invalidates the plot.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.clientW || outsideHeight != w.clientH {
		w.clientW, w.clientH = outsideWidth, outsideHeight
		w.Invalidate()
	}
	return outsideWidth, outsideHeight
}

// paint draws one full frame into c and returns the plot area used. The
// control panel is laid out here because its geometry depends on text
// metrics.
func (w *Window) paint(c Canvas) Rect {
	c.FillRect(Rect{Width: float64(w.clientW), Height: float64(w.clientH)}, ColorWhite)

	area := w.PlotArea()
	w.renderer.Draw(c, area, w.samples)

	w.panel.Layout(c, float64(w.clientW))
	w.panel.Draw(c)
	return area
}

// Close releases the font set and the cached frame. It is safe to call more
// than once.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.fonts.Close()
	if w.frame != nil {
		w.frame.Deallocate()
		w.frame = nil
	}
}
