package graphlab

import "testing"

func TestPlotArea(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		want         Rect
		expectsEmpty bool
	}{
		{"default window", 900, 600, Rect{40, 80, 820, 440}, false},
		{"minimum window", 500, 400, Rect{40, 80, 420, 240}, false},
		{"too narrow", 80, 600, Rect{40, 80, 0, 440}, true},
		{"too short", 900, 100, Rect{40, 80, 820, -20}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlotArea(tt.w, tt.h, PanelHeight, PlotPadding)
			if got != tt.want {
				t.Errorf("PlotArea = %+v, want %+v", got, tt.want)
			}
			if got.Empty() != tt.expectsEmpty {
				t.Errorf("Empty = %v, want %v", got.Empty(), tt.expectsEmpty)
			}
		})
	}
}
