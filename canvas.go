package graphlab

// LineStyle describes a stroked outline.
type LineStyle struct {
	Color Color
	Width float64
	Dash  float64 // dash and gap length in pixels; 0 draws a solid line
}

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Color Color
	Size  float64
	Bold  bool
}

// Canvas is the 2D drawing context the renderer and controls paint into.
// Coordinates are screen pixels with the origin at the top-left. Text is
// positioned by its top-left corner.
type Canvas interface {
	StrokeRect(r Rect, style LineStyle)
	FillRect(r Rect, c Color)
	StrokePolyline(points []Vec2, style LineStyle)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius float64, style LineStyle)
	DrawText(s string, at Vec2, style TextStyle)
	MeasureText(s string, style TextStyle) (width, height float64)
}
