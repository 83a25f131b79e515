package graphlab

import "math"

// Bounds holds the data extents of a sample set.
type Bounds struct {
	MinT, MaxT float64
	MinY, MaxY float64
}

// ComputeBounds returns the min/max of T and Y over samples. An empty slice
// yields the zero Bounds.
func ComputeBounds(samples []Sample) Bounds {
	if len(samples) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinT: samples[0].T, MaxT: samples[0].T,
		MinY: samples[0].Y, MaxY: samples[0].Y,
	}
	for _, s := range samples[1:] {
		b.MinT = math.Min(b.MinT, s.T)
		b.MaxT = math.Max(b.MaxT, s.T)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxY = math.Max(b.MaxY, s.Y)
	}
	return b
}

// minSpan is the narrowest range the mapper divides by.
const minSpan = 1e-9

// normalized widens any range narrower than minSpan to a unit range starting
// at its minimum, so a constant series lies on the left or bottom edge.
func (b Bounds) normalized() Bounds {
	if math.Abs(b.MaxT-b.MinT) < minSpan {
		b.MaxT = b.MinT + 1
	}
	if math.Abs(b.MaxY-b.MinY) < minSpan {
		b.MaxY = b.MinY + 1
	}
	return b
}

// Mapper converts data coordinates to screen coordinates inside a drawing
// area. Larger Y values map higher on screen. The zero value is not usable;
// build one with NewMapper.
type Mapper struct {
	bounds Bounds
	area   Rect
}

// NewMapper returns a Mapper for the given data bounds and target area.
func NewMapper(b Bounds, area Rect) Mapper {
	return Mapper{bounds: b.normalized(), area: area}
}

// Bounds returns the effective bounds, after degenerate ranges have been
// widened.
func (m Mapper) Bounds() Bounds { return m.bounds }

// Map returns the screen position of s.
func (m Mapper) Map(s Sample) Vec2 {
	b := m.bounds
	return Vec2{
		X: m.area.Left() + (s.T-b.MinT)/(b.MaxT-b.MinT)*m.area.Width,
		Y: m.area.Bottom() - (s.Y-b.MinY)/(b.MaxY-b.MinY)*m.area.Height,
	}
}

// MapAll maps every sample, preserving order.
func (m Mapper) MapAll(samples []Sample) []Vec2 {
	pts := make([]Vec2, len(samples))
	for i, s := range samples {
		pts[i] = m.Map(s)
	}
	return pts
}

// MapSamples maps samples into area using their own bounds.
func MapSamples(samples []Sample, area Rect) []Vec2 {
	return NewMapper(ComputeBounds(samples), area).MapAll(samples)
}
