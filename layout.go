package graphlab

// Window layout constants in pixels.
const (
	PanelHeight = 40 // control strip along the top edge
	PlotPadding = 40 // gap between the plot frame and the client edges
)

// PlotArea returns the plot frame for a client area of clientW×clientH with a
// control panel of panelH pixels on top and padding on every side. The result
// may have a non-positive width or height when the window is very small.
func PlotArea(clientW, clientH, panelH, padding float64) Rect {
	return Rect{
		X:      padding,
		Y:      panelH + padding,
		Width:  clientW - 2*padding,
		Height: clientH - panelH - 2*padding,
	}
}
