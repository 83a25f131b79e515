package graphlab

import "fmt"

// OpKind identifies a recorded Canvas call.
type OpKind uint8

const (
	OpStrokeRect     OpKind = iota // StrokeRect
	OpFillRect                     // FillRect
	OpStrokePolyline               // StrokePolyline
	OpFillCircle                   // FillCircle
	OpStrokeCircle                 // StrokeCircle
	OpDrawText                     // DrawText
)

func (k OpKind) String() string {
	switch k {
	case OpStrokeRect:
		return "StrokeRect"
	case OpFillRect:
		return "FillRect"
	case OpStrokePolyline:
		return "StrokePolyline"
	case OpFillCircle:
		return "FillCircle"
	case OpStrokeCircle:
		return "StrokeCircle"
	case OpDrawText:
		return "DrawText"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Points []Vec2
	Center Vec2
	Radius float64
	Text   string
	Line   LineStyle
	Font   TextStyle
	Color  Color
}

// RecordingCanvas is a Canvas that records calls instead of drawing them.
// Text is measured with a fixed advance of 0.6·Size per rune.
type RecordingCanvas struct {
	Ops []Op
}

// Reset discards recorded ops, keeping the backing array.
func (rc *RecordingCanvas) Reset() { rc.Ops = rc.Ops[:0] }

// Count returns how many ops of the given kind were recorded.
func (rc *RecordingCanvas) Count(kind OpKind) int {
	n := 0
	for i := range rc.Ops {
		if rc.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of the given kind in call order.
func (rc *RecordingCanvas) Filter(kind OpKind) []Op {
	var out []Op
	for i := range rc.Ops {
		if rc.Ops[i].Kind == kind {
			out = append(out, rc.Ops[i])
		}
	}
	return out
}

// Texts returns the strings passed to DrawText in call order.
func (rc *RecordingCanvas) Texts() []string {
	var out []string
	for i := range rc.Ops {
		if rc.Ops[i].Kind == OpDrawText {
			out = append(out, rc.Ops[i].Text)
		}
	}
	return out
}

func (rc *RecordingCanvas) StrokeRect(r Rect, style LineStyle) {
	rc.Ops = append(rc.Ops, Op{Kind: OpStrokeRect, Rect: r, Line: style})
}

func (rc *RecordingCanvas) FillRect(r Rect, c Color) {
	rc.Ops = append(rc.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

func (rc *RecordingCanvas) StrokePolyline(points []Vec2, style LineStyle) {
	cp := make([]Vec2, len(points))
	copy(cp, points)
	rc.Ops = append(rc.Ops, Op{Kind: OpStrokePolyline, Points: cp, Line: style})
}

func (rc *RecordingCanvas) FillCircle(center Vec2, radius float64, c Color) {
	rc.Ops = append(rc.Ops, Op{Kind: OpFillCircle, Center: center, Radius: radius, Color: c})
}

func (rc *RecordingCanvas) StrokeCircle(center Vec2, radius float64, style LineStyle) {
	rc.Ops = append(rc.Ops, Op{Kind: OpStrokeCircle, Center: center, Radius: radius, Line: style})
}

func (rc *RecordingCanvas) DrawText(s string, at Vec2, style TextStyle) {
	rc.Ops = append(rc.Ops, Op{Kind: OpDrawText, Text: s, Center: at, Font: style})
}

func (rc *RecordingCanvas) MeasureText(s string, style TextStyle) (width, height float64) {
	return float64(len([]rune(s))) * style.Size * 0.6, style.Size
}
