package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/graphlab"
)

func samples(t *testing.T) []graphlab.Sample {
	t.Helper()
	s, err := graphlab.Generate(graphlab.CubedCosine, graphlab.DefaultDomain)
	require.NoError(t, err)
	return s
}

func TestNewPlot(t *testing.T) {
	p, err := NewPlot(samples(t), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, graphlab.CubedCosineTitle, p.Title.Text)
	assert.Equal(t, "t", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
}

func TestNewPlotNoSamples(t *testing.T) {
	_, err := NewPlot(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestSavePNG(t *testing.T) {
	for _, mode := range []graphlab.PlotMode{graphlab.PlotLine, graphlab.PlotScatter} {
		t.Run(mode.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plot.png")
			opts := DefaultOptions()
			opts.Mode = mode
			require.NoError(t, Save(samples(t), opts, path))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()
			img, err := png.Decode(f)
			require.NoError(t, err)
			assert.Positive(t, img.Bounds().Dx())
			assert.Positive(t, img.Bounds().Dy())
		})
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.bmp")
	err := Save(samples(t), DefaultOptions(), path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestWriteToSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowLabels = true
	require.NoError(t, WriteTo(&buf, samples(t), opts, "SVG"))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "(2.3; ")
}

func TestWriteToWithoutLabels(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowLabels = false
	require.NoError(t, WriteTo(&buf, samples(t), opts, "svg"))
	assert.NotContains(t, buf.String(), "(2.3; ")
}

func TestWriteToUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTo(&buf, samples(t), DefaultOptions(), "gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}
