package graphlab

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a resizable desktop window configured by cfg and runs w until the
// window is closed or w.Quit is called. The window's fonts and frame buffer
// are released before Run returns.
func Run(w *Window, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSizeLimits(sizeLimit(cfg.MinWidth), sizeLimit(cfg.MinHeight), -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.ShowFPS {
		w.fps = &fpsOverlay{}
	}
	defer w.Close()

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("graphlab: run: %w", err)
	}
	for _, p := range w.written {
		logf("screenshot: wrote %s", p)
	}
	return nil
}

// RunConfigured builds a Window from cfg and runs it.
func RunConfigured(cfg Config) error {
	w, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	return Run(w, cfg.Window)
}

// sizeLimit maps an unset (zero) limit to Ebitengine's "no limit" value.
func sizeLimit(v int) int {
	if v <= 0 {
		return -1
	}
	return v
}
