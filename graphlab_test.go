package graphlab

import (
	"errors"
	"image/color"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectEdgesAndEmpty(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	if r.Left() != 10 || r.Right() != 110 || r.Top() != 20 || r.Bottom() != 70 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	for _, e := range []Rect{{}, {0, 0, 0, 10}, {0, 0, 10, 0}, {0, 0, -1, 10}, {0, 0, 10, -1}} {
		if !e.Empty() {
			t.Errorf("Rect%v.Empty() = false", e)
		}
	}
	if r.Empty() {
		t.Error("non-empty rect reported empty")
	}
}

// --- PlotMode ---

func TestParsePlotMode(t *testing.T) {
	tests := []struct {
		in   string
		want PlotMode
		err  bool
	}{
		{"line", PlotLine, false},
		{"LINE", PlotLine, false},
		{" scatter ", PlotScatter, false},
		{"points", PlotScatter, false},
		{"pie", PlotLine, true},
		{"", PlotLine, true},
	}
	for _, tt := range tests {
		got, err := ParsePlotMode(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParsePlotMode(%q) err = %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParsePlotMode(%q) err = %v, want ErrInvalidMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePlotMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlotModeText(t *testing.T) {
	for _, m := range []PlotMode{PlotLine, PlotScatter} {
		b, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var back PlotMode
		if err := back.UnmarshalText(b); err != nil || back != m {
			t.Errorf("UnmarshalText(%q) = %v, %v", b, back, err)
		}
	}
	if _, err := PlotMode(9).MarshalText(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("MarshalText(9) err = %v", err)
	}
	if PlotMode(9).String() != "PlotMode(9)" {
		t.Errorf("String = %q", PlotMode(9).String())
	}
}

// --- Color ---

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{127, 0, 0, 127}},
		{Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(); got != tt.want {
			t.Errorf("Color%v.RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
