package graphlab

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas implements Canvas on top of an *ebiten.Image using the
// vector and text/v2 packages. It is cheap to create; keep the FontSet
// around and build a fresh canvas per paint pass.
type EbitenCanvas struct {
	target    *ebiten.Image
	fonts     *FontSet
	antialias bool

	// DrawCalls counts Canvas calls issued since creation.
	DrawCalls int
}

// NewEbitenCanvas returns a canvas drawing into target with text from fonts.
func NewEbitenCanvas(target *ebiten.Image, fonts *FontSet) *EbitenCanvas {
	return &EbitenCanvas{target: target, fonts: fonts, antialias: true}
}

func (c *EbitenCanvas) StrokeRect(r Rect, style LineStyle) {
	c.DrawCalls++
	if style.Dash <= 0 {
		vector.StrokeRect(c.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			float32(style.Width), style.Color.RGBA(), c.antialias)
		return
	}
	c.dashedLine(r.Left(), r.Top(), r.Right(), r.Top(), style)
	c.dashedLine(r.Right(), r.Top(), r.Right(), r.Bottom(), style)
	c.dashedLine(r.Right(), r.Bottom(), r.Left(), r.Bottom(), style)
	c.dashedLine(r.Left(), r.Bottom(), r.Left(), r.Top(), style)
}

func (c *EbitenCanvas) FillRect(r Rect, col Color) {
	c.DrawCalls++
	vector.DrawFilledRect(c.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		col.RGBA(), c.antialias)
}

func (c *EbitenCanvas) StrokePolyline(points []Vec2, style LineStyle) {
	if len(points) < 2 {
		return
	}
	c.DrawCalls++
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if style.Dash > 0 {
			c.dashedLine(a.X, a.Y, b.X, b.Y, style)
			continue
		}
		vector.StrokeLine(c.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(style.Width), style.Color.RGBA(), c.antialias)
	}
	// Round joins so thick segments do not show notches at the vertices.
	if style.Width > 1.5 && style.Dash <= 0 {
		for _, p := range points[1 : len(points)-1] {
			vector.DrawFilledCircle(c.target, float32(p.X), float32(p.Y), float32(style.Width/2),
				style.Color.RGBA(), c.antialias)
		}
	}
}

func (c *EbitenCanvas) FillCircle(center Vec2, radius float64, col Color) {
	c.DrawCalls++
	vector.DrawFilledCircle(c.target, float32(center.X), float32(center.Y), float32(radius),
		col.RGBA(), c.antialias)
}

func (c *EbitenCanvas) StrokeCircle(center Vec2, radius float64, style LineStyle) {
	c.DrawCalls++
	vector.StrokeCircle(c.target, float32(center.X), float32(center.Y), float32(radius),
		float32(style.Width), style.Color.RGBA(), c.antialias)
}

func (c *EbitenCanvas) DrawText(s string, at Vec2, style TextStyle) {
	c.DrawCalls++
	face := c.fonts.Face(style.Size, style.Bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale = textColorScale(style.Color)
	op.LineSpacing = LineHeight(face)
	text.Draw(c.target, s, face, op)
}

func (c *EbitenCanvas) MeasureText(s string, style TextStyle) (width, height float64) {
	face := c.fonts.Face(style.Size, style.Bold)
	return text.Measure(s, face, LineHeight(face))
}

// dashedLine strokes (x0,y0)-(x1,y1) as alternating dashes and gaps of
// style.Dash pixels.
func (c *EbitenCanvas) dashedLine(x0, y0, x1, y1 float64, style LineStyle) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for d := 0.0; d < length; d += 2 * style.Dash {
		end := math.Min(d+style.Dash, length)
		vector.StrokeLine(c.target,
			float32(x0+ux*d), float32(y0+uy*d),
			float32(x0+ux*end), float32(y0+uy*end),
			float32(style.Width), style.Color.RGBA(), c.antialias)
	}
}

// textColorScale converts c to the premultiplied scale text.Draw expects.
func textColorScale(c Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(c.RGBA())
	return cs
}
