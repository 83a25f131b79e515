package graphlab

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 20},
			{"action": "wait", "frames": 3},
			{"action": "mode", "mode": "scatter"},
			{"action": "labels", "on": false},
			{"action": "quit"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 20 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[4].On == nil || *runner.steps[4].On {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"unknown action", `{"steps": [{"action": "dance"}]}`},
		{"bad mode", `{"steps": [{"action": "mode", "mode": "pie"}]}`},
		{"labels without on", `{"steps": [{"action": "labels"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestRunnerStep_Click(t *testing.T) {
	w, _ := newTestWindow(t)
	x, y := centerOf(w.panel.Modes.OptionBounds(1))
	runner := &TestRunner{steps: []testStep{{Action: "click", X: x, Y: y}}}
	w.SetTestRunner(runner)

	// First step call: click queues press+release (2 events).
	runner.step(w)
	if w.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.PendingInput())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	w.processInput()
	w.processInput()
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after the queue drained")
	}
	if w.Mode() != PlotScatter {
		t.Errorf("mode = %v, want scatter", w.Mode())
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	w, _ := newTestWindow(t)
	runner := &TestRunner{steps: []testStep{
		{Action: "wait", Frames: 3},
		{Action: "screenshot", Label: "after"},
	}}

	runner.step(w) // wait frame 1
	runner.step(w) // wait frame 2
	runner.step(w) // wait frame 3
	if len(w.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before wait finished")
	}
	runner.step(w)
	if len(w.screenshotQueue) != 1 || w.screenshotQueue[0] != "after" {
		t.Errorf("queue = %v, want [after]", w.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_ModeLabelsQuit(t *testing.T) {
	w, _ := newTestWindow(t)
	off := false
	runner := &TestRunner{steps: []testStep{
		{Action: "mode", Mode: "scatter"},
		{Action: "labels", On: &off},
		{Action: "quit"},
	}}
	w.SetTestRunner(runner)

	for range 3 {
		runner.step(w)
	}
	if w.Mode() != PlotScatter {
		t.Errorf("mode = %v, want scatter", w.Mode())
	}
	if w.ShowLabels() {
		t.Error("labels still on")
	}
	if !w.quit {
		t.Error("quit not requested")
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
