package graphlab

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadTestScript for a script without steps.
var ErrEmptyScript = errors.New("graphlab: test script has no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	On     *bool   `json:"on,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected clicks, toggles and screenshots across
// frames for automated visual checks. Attach it with Window.SetTestRunner.
//
// Supported actions:
//
//	{"action": "click", "x": 20, "y": 20}
//	{"action": "wait", "frames": 10}
//	{"action": "screenshot", "label": "scatter"}
//	{"action": "mode", "mode": "scatter"}
//	{"action": "labels", "on": false}
//	{"action": "quit"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "screenshot", "quit":
		case "mode":
			if _, err := ParsePlotMode(st.Mode); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		case "labels":
			if st.On == nil {
				return nil, fmt.Errorf("parse test script: step %d: labels needs \"on\"", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the window. Its step method runs
// from Window.Update before input processing each frame.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		w.Screenshot(st.Label)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mode":
		mode, _ := ParsePlotMode(st.Mode)
		w.panel.Modes.Select(int(mode))
	case "labels":
		if *st.On != w.panel.Labels.Checked {
			w.panel.Labels.Toggle()
		}
	case "quit":
		w.Quit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
