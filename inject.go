package graphlab

// syntheticPointerEvent represents a single injected pointer event in window
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next frame's input pass.
func (w *Window) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a left-button release at (x, y).
func (w *Window) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (w *Window) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// PendingInput returns the number of injected events not yet consumed.
func (w *Window) PendingInput() int { return len(w.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (w *Window) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
