package graphlab

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives diagnostics. Tests swap it for a buffer.
var logOutput io.Writer = os.Stderr

// logf writes a "[graphlab]"-prefixed line to logOutput.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[graphlab] "+format+"\n", args...)
}

// paintStats holds per-paint timing and draw-call metrics.
type paintStats struct {
	paintTime time.Duration
	drawCalls int
	samples   int
	area      Rect
}

// SetDebugMode enables per-paint statistics on stderr.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// debugLog prints paint stats when debug mode is on.
func (w *Window) debugLog(stats paintStats) {
	if !w.debug {
		return
	}
	logf("paint: %v | draw calls: %d | samples: %d | area: %.0fx%.0f",
		stats.paintTime, stats.drawCalls, stats.samples, stats.area.Width, stats.area.Height)
	if stats.area.Empty() {
		logf("warning: plot area %.0fx%.0f is empty, plot skipped",
			stats.area.Width, stats.area.Height)
	}
}
