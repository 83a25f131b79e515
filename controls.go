package graphlab

// ControlID identifies a clickable element of the ControlPanel.
type ControlID int

// ControlNone means no control is under the pointer.
const ControlNone ControlID = -1

// Control geometry in pixels.
const (
	controlMarginX = 10
	controlGap     = 20
	controlBoxSize = 12
	controlTextGap = 6
)

// TextMeasurer reports the rendered size of a string. Canvas implements it.
type TextMeasurer interface {
	MeasureText(s string, style TextStyle) (width, height float64)
}

// Checkbox is a labelled on/off toggle.
type Checkbox struct {
	Label    string
	Checked  bool
	OnChange func(checked bool)

	bounds Rect
}

// Toggle flips the checkbox and fires OnChange.
func (cb *Checkbox) Toggle() {
	cb.Checked = !cb.Checked
	if cb.OnChange != nil {
		cb.OnChange(cb.Checked)
	}
}

// Bounds returns the hit rectangle computed by the last layout.
func (cb *Checkbox) Bounds() Rect { return cb.bounds }

// RadioGroup is a set of mutually exclusive labelled options.
type RadioGroup struct {
	Options  []string
	Selected int
	OnChange func(index int)

	bounds []Rect
}

// Select makes option i current. OnChange fires only when the selection
// actually changes; out-of-range indices are ignored.
func (rg *RadioGroup) Select(i int) {
	if i < 0 || i >= len(rg.Options) || i == rg.Selected {
		return
	}
	rg.Selected = i
	if rg.OnChange != nil {
		rg.OnChange(i)
	}
}

// OptionBounds returns the hit rectangle of option i computed by the last
// layout, or the zero Rect before the first layout.
func (rg *RadioGroup) OptionBounds(i int) Rect {
	if i < 0 || i >= len(rg.bounds) {
		return Rect{}
	}
	return rg.bounds[i]
}

// ControlPanel is the strip along the top of the window holding the plot
// mode radio group and the label checkbox. Radio options are addressed by
// their index; the checkbox follows them.
type ControlPanel struct {
	Modes  *RadioGroup
	Labels *Checkbox

	Background Color
	Text       TextStyle
	Accent     Color

	bounds Rect
}

// NewControlPanel returns a panel with "Line chart"/"Scatter" options and a
// "Show coordinates" checkbox reflecting mode and showLabels.
func NewControlPanel(mode PlotMode, showLabels bool) *ControlPanel {
	return &ControlPanel{
		Modes: &RadioGroup{
			Options:  []string{"Line chart", "Scatter"},
			Selected: int(mode),
		},
		Labels: &Checkbox{
			Label:   "Show coordinates",
			Checked: showLabels,
		},
		Background: ColorWhiteSmoke,
		Text:       TextStyle{Color: ColorBlack, Size: 13},
		Accent:     ColorRoyalBlue,
	}
}

// Bounds returns the panel rectangle computed by the last layout.
func (p *ControlPanel) Bounds() Rect { return p.bounds }

// Layout positions the controls left to right in a strip width pixels wide
// and PanelHeight pixels tall.
func (p *ControlPanel) Layout(m TextMeasurer, width float64) {
	p.bounds = Rect{Width: width, Height: PanelHeight}
	x := float64(controlMarginX)

	place := func(label string) Rect {
		w, h := m.MeasureText(label, p.Text)
		h = max(h, controlBoxSize)
		r := Rect{
			X:      x,
			Y:      (PanelHeight - h) / 2,
			Width:  controlBoxSize + controlTextGap + w,
			Height: h,
		}
		x += r.Width + controlGap
		return r
	}

	p.Modes.bounds = p.Modes.bounds[:0]
	for _, opt := range p.Modes.Options {
		p.Modes.bounds = append(p.Modes.bounds, place(opt))
	}
	p.Labels.bounds = place(p.Labels.Label)
}

// checkboxID is the ControlID of the label checkbox.
func (p *ControlPanel) checkboxID() ControlID {
	return ControlID(len(p.Modes.Options))
}

// HitTest returns the control containing (x, y), or ControlNone.
func (p *ControlPanel) HitTest(x, y float64) ControlID {
	for i, r := range p.Modes.bounds {
		if r.Contains(x, y) {
			return ControlID(i)
		}
	}
	if p.Labels.bounds.Width > 0 && p.Labels.bounds.Contains(x, y) {
		return p.checkboxID()
	}
	return ControlNone
}

// Activate performs the click action of id.
func (p *ControlPanel) Activate(id ControlID) {
	switch {
	case id == ControlNone:
	case id == p.checkboxID():
		p.Labels.Toggle()
	case int(id) >= 0 && int(id) < len(p.Modes.Options):
		p.Modes.Select(int(id))
	}
}

// Draw paints the panel. It draws nothing until Layout has run.
func (p *ControlPanel) Draw(c Canvas) {
	if len(p.Modes.bounds) != len(p.Modes.Options) || p.bounds.Empty() {
		return
	}
	c.FillRect(p.bounds, p.Background)

	frame := LineStyle{Color: ColorGray, Width: 1}
	for i, opt := range p.Modes.Options {
		r := p.Modes.bounds[i]
		center := Vec2{X: r.X + controlBoxSize/2, Y: r.Y + r.Height/2}
		c.StrokeCircle(center, controlBoxSize/2, frame)
		if i == p.Modes.Selected {
			c.FillCircle(center, controlBoxSize/4, p.Accent)
		}
		p.drawLabel(c, opt, r)
	}

	r := p.Labels.bounds
	box := Rect{X: r.X, Y: r.Y + (r.Height-controlBoxSize)/2, Width: controlBoxSize, Height: controlBoxSize}
	c.StrokeRect(box, frame)
	if p.Labels.Checked {
		c.FillRect(Rect{X: box.X + 3, Y: box.Y + 3, Width: box.Width - 6, Height: box.Height - 6}, p.Accent)
	}
	p.drawLabel(c, p.Labels.Label, r)
}

func (p *ControlPanel) drawLabel(c Canvas, label string, r Rect) {
	_, h := c.MeasureText(label, p.Text)
	c.DrawText(label, Vec2{X: r.X + controlBoxSize + controlTextGap, Y: r.Y + (r.Height-h)/2}, p.Text)
}
