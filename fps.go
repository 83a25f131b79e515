package graphlab

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often, in seconds, the overlay text is refreshed.
const fpsInterval = 0.5

// fpsOverlay prints FPS/TPS in the bottom-left corner of the screen.
type fpsOverlay struct {
	elapsed float64
	msg     string
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < fpsInterval && o.msg != "" {
		return
	}
	o.elapsed = 0
	o.msg = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, o.msg, 4, h-18)
}
