package graphlab

import "fmt"

// Default marker radii in pixels.
const (
	LineMarkerRadius    = 2.5
	ScatterMarkerRadius = 4.0
)

// Label and title placement relative to the point / plot area.
const (
	labelOffsetX = 3
	labelOffsetY = -15
	titleOffsetY = -25
)

// RenderStyle groups the pens, brushes and fonts a Renderer draws with.
type RenderStyle struct {
	Border LineStyle
	Line   LineStyle
	Marker Color
	Label  TextStyle
	Title  TextStyle
}

// DefaultRenderStyle returns a dashed gray frame, a 2px royal blue line,
// crimson markers, small black labels and a bold slate title.
func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		Border: LineStyle{Color: ColorGray, Width: 1, Dash: 4},
		Line:   LineStyle{Color: ColorRoyalBlue, Width: 2},
		Marker: ColorCrimson,
		Label:  TextStyle{Color: ColorBlack, Size: 11},
		Title:  TextStyle{Color: ColorDarkSlateGray, Size: 16, Bold: true},
	}
}

// Renderer draws a sample set into a Canvas.
type Renderer struct {
	Mode       PlotMode
	ShowLabels bool
	Title      string
	Style      RenderStyle

	// MarkerRadius overrides the per-mode default radius when positive.
	MarkerRadius float64
}

// NewRenderer returns a line-mode renderer with labels on and the default
// style.
func NewRenderer(title string) *Renderer {
	return &Renderer{
		Mode:       PlotLine,
		ShowLabels: true,
		Title:      title,
		Style:      DefaultRenderStyle(),
	}
}

// DefaultMarkerRadius returns the marker radius used for mode.
func DefaultMarkerRadius(mode PlotMode) float64 {
	if mode == PlotScatter {
		return ScatterMarkerRadius
	}
	return LineMarkerRadius
}

func (r *Renderer) markerRadius() float64 {
	if r.MarkerRadius > 0 {
		return r.MarkerRadius
	}
	return DefaultMarkerRadius(r.Mode)
}

// FormatLabel returns the coordinate label drawn next to a sample.
func FormatLabel(s Sample) string {
	return fmt.Sprintf("(%.1f; %.3f)", s.T, s.Y)
}

// Draw paints samples into area. A non-positive area draws nothing. The
// connecting line needs at least two points and is never drawn in scatter
// mode.
func (r *Renderer) Draw(c Canvas, area Rect, samples []Sample) {
	if area.Empty() {
		return
	}

	c.StrokeRect(area, r.Style.Border)

	pts := MapSamples(samples, area)
	if r.Mode == PlotLine && len(pts) >= 2 {
		c.StrokePolyline(pts, r.Style.Line)
	}

	radius := r.markerRadius()
	for i, p := range pts {
		c.FillCircle(p, radius, r.Style.Marker)
		if r.ShowLabels {
			c.DrawText(FormatLabel(samples[i]), Vec2{X: p.X + labelOffsetX, Y: p.Y + labelOffsetY}, r.Style.Label)
		}
	}

	if r.Title != "" {
		c.DrawText(r.Title, Vec2{X: area.Left(), Y: area.Top() + titleOffsetY}, r.Style.Title)
	}
}
