package graphlab

import (
	"bytes"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = old })
	return &buf
}

func TestDebugLogDisabled(t *testing.T) {
	buf := captureLog(t)
	w, _ := newTestWindow(t)
	w.debugLog(paintStats{drawCalls: 17, area: testArea})
	if buf.Len() != 0 {
		t.Errorf("debug off wrote %q", buf.String())
	}
}

func TestDebugLogEnabled(t *testing.T) {
	buf := captureLog(t)
	w, _ := newTestWindow(t)
	w.SetDebugMode(true)
	w.debugLog(paintStats{drawCalls: 17, samples: 7, area: testArea})

	out := buf.String()
	if !strings.HasPrefix(out, "[graphlab] paint:") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "draw calls: 17") || !strings.Contains(out, "820x440") {
		t.Errorf("output missing stats: %q", out)
	}
	if strings.Contains(out, "warning") {
		t.Errorf("unexpected warning: %q", out)
	}
}

func TestDebugLogWarnsOnEmptyArea(t *testing.T) {
	buf := captureLog(t)
	w, _ := newTestWindow(t)
	w.SetDebugMode(true)
	w.debugLog(paintStats{area: Rect{Width: -10, Height: 20}})
	if !strings.Contains(buf.String(), "[graphlab] warning: plot area") {
		t.Errorf("output = %q", buf.String())
	}
}
