package graphlab

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

// Palette used by the default plot style. Names follow the colors of the
// classic desktop chart this program reproduces.
var (
	ColorWhite         = Color{1, 1, 1, 1}
	ColorBlack         = Color{0, 0, 0, 1}
	ColorGray          = Color{0.502, 0.502, 0.502, 1}
	ColorRoyalBlue     = Color{0.255, 0.412, 0.882, 1}
	ColorCrimson       = Color{0.863, 0.078, 0.235, 1}
	ColorDarkSlateGray = Color{0.184, 0.310, 0.310, 1}
	ColorWhiteSmoke    = Color{0.961, 0.961, 0.961, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for screen positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether r has a non-positive width or height.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// PlotMode selects how samples are drawn.
type PlotMode uint8

const (
	PlotLine    PlotMode = iota // polyline through the samples plus small markers
	PlotScatter                 // larger discrete markers, no connecting line
)

// ErrInvalidMode is returned when a plot mode name is not recognised.
var ErrInvalidMode = errors.New("graphlab: invalid plot mode")

// String returns the mode's text form ("line" or "scatter").
func (m PlotMode) String() string {
	switch m {
	case PlotLine:
		return "line"
	case PlotScatter:
		return "scatter"
	default:
		return fmt.Sprintf("PlotMode(%d)", uint8(m))
	}
}

// ParsePlotMode parses "line" or "scatter" (case-insensitive).
func ParsePlotMode(s string) (PlotMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "lines":
		return PlotLine, nil
	case "scatter", "points":
		return PlotScatter, nil
	}
	return PlotLine, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m PlotMode) MarshalText() ([]byte, error) {
	if m != PlotLine && m != PlotScatter {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PlotMode) UnmarshalText(text []byte) error {
	v, err := ParsePlotMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
