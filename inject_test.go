package graphlab

import "testing"

func TestInjectClick(t *testing.T) {
	w, _ := newTestWindow(t)
	x, y := centerOf(w.panel.Labels.Bounds())

	w.InjectClick(x, y)
	if w.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.PendingInput())
	}

	// Frame 1: press
	w.processInput()
	if w.PendingInput() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", w.PendingInput())
	}
	if !w.ShowLabels() {
		t.Error("checkbox should not toggle on press frame")
	}

	// Frame 2: release, click fires
	w.processInput()
	if w.PendingInput() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", w.PendingInput())
	}
	if w.ShowLabels() {
		t.Error("checkbox should toggle on release frame")
	}
}

func TestInjectedInputSkipsRealPointer(t *testing.T) {
	w, in := newTestWindow(t)
	x, y := centerOf(w.panel.Modes.OptionBounds(1))

	// The real pointer is held over the scatter option, but the injected
	// press lands on empty space and wins for this frame.
	in.x, in.y, in.pressed = x, y, true
	w.InjectPress(500, 300)
	w.processInput()
	if w.pointer.hit != ControlNone {
		t.Errorf("hit = %d, want ControlNone", w.pointer.hit)
	}
}

func TestInjectClickOutsideControls(t *testing.T) {
	w, _ := newTestWindow(t)
	w.InjectClick(450, 300)
	w.processInput()
	w.processInput()
	if w.Mode() != PlotLine || !w.ShowLabels() || w.Dirty() {
		t.Error("click on the plot area should not change state")
	}
}
