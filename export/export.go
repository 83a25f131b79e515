// Package export renders graphlab samples to image and document files with
// gonum/plot, for use without a window.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/phanxgames/graphlab"
)

var (
	// ErrNoSamples is returned when there is nothing to plot.
	ErrNoSamples = errors.New("export: no samples")
	// ErrUnsupportedFormat is returned for an unknown output format.
	ErrUnsupportedFormat = errors.New("export: unsupported format")
)

// Formats lists the accepted output formats.
var Formats = []string{"png", "svg", "pdf", "jpg", "jpeg"}

// Options controls the exported figure.
type Options struct {
	Title      string
	Mode       graphlab.PlotMode
	ShowLabels bool
	Width      vg.Length
	Height     vg.Length
}

// DefaultOptions returns a 9×6 inch labelled line chart titled after
// CubedCosine.
func DefaultOptions() Options {
	return Options{
		Title:      graphlab.CubedCosineTitle,
		Mode:       graphlab.PlotLine,
		ShowLabels: true,
		Width:      9 * vg.Inch,
		Height:     6 * vg.Inch,
	}
}

func toXYs(samples []graphlab.Sample) plotter.XYs {
	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = s.T
		xys[i].Y = s.Y
	}
	return xys
}

// NewPlot builds a gonum plot of samples styled like the window: a blue line
// in line mode, crimson circular markers, and optional coordinate labels.
func NewPlot(samples []graphlab.Sample, opts Options) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	xys := toXYs(samples)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	if opts.Mode == graphlab.PlotLine && len(xys) >= 2 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("export: line: %w", err)
		}
		line.Color = graphlab.ColorRoyalBlue.RGBA()
		line.Width = vg.Points(2)
		p.Add(line)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("export: scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = graphlab.ColorCrimson.RGBA()
	scatter.GlyphStyle.Radius = vg.Points(graphlab.DefaultMarkerRadius(opts.Mode))
	p.Add(scatter)

	if opts.ShowLabels {
		names := make([]string, len(samples))
		for i, s := range samples {
			names[i] = graphlab.FormatLabel(s)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return nil, fmt.Errorf("export: labels: %w", err)
		}
		labels.Offset = vg.Point{X: vg.Points(3), Y: vg.Points(3)}
		p.Add(labels)
	}
	return p, nil
}

// format returns the lower-case format name for a path's extension.
func format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return checkFormat(ext)
}

func checkFormat(f string) (string, error) {
	f = strings.ToLower(f)
	for _, ok := range Formats {
		if f == ok {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Save writes the plot of samples to path; the format follows the file
// extension.
func Save(samples []graphlab.Sample, opts Options, path string) error {
	if _, err := format(path); err != nil {
		return err
	}
	p, err := NewPlot(samples, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// WriteTo writes the plot of samples to w in the named format.
func WriteTo(w io.Writer, samples []graphlab.Sample, opts Options, formatName string) error {
	f, err := checkFormat(formatName)
	if err != nil {
		return err
	}
	p, err := NewPlot(samples, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, f)
	if err != nil {
		return fmt.Errorf("export: writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}
