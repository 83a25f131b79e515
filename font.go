package graphlab

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faceKey identifies a cached face.
type faceKey struct {
	size float64
	bold bool
}

// FontSet owns the regular and bold TrueType sources and caches one
// GoTextFace per (size, bold) pair. Create it once per window and Close it
// when the window goes away.
type FontSet struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewFontSet parses the given TTF/OTF data. boldTTF may be nil, in which case
// bold text uses the regular source.
func NewFontSet(regularTTF, boldTTF []byte) (*FontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(regularTTF))
	if err != nil {
		return nil, fmt.Errorf("graphlab: failed to parse regular TTF data: %w", err)
	}
	fs := &FontSet{
		regular: regular,
		bold:    regular,
		faces:   make(map[faceKey]*text.GoTextFace),
	}
	if boldTTF != nil {
		bold, err := text.NewGoTextFaceSource(bytes.NewReader(boldTTF))
		if err != nil {
			return nil, fmt.Errorf("graphlab: failed to parse bold TTF data: %w", err)
		}
		fs.bold = bold
	}
	return fs, nil
}

// DefaultFontSet returns a FontSet backed by the Go Regular and Go Bold fonts.
func DefaultFontSet() (*FontSet, error) {
	return NewFontSet(goregular.TTF, gobold.TTF)
}

// Face returns the cached face for size and weight, creating it on first use.
func (fs *FontSet) Face(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size: size, bold: bold}
	if f, ok := fs.faces[key]; ok {
		return f
	}
	src := fs.regular
	if bold {
		src = fs.bold
	}
	f := &text.GoTextFace{Source: src, Size: size}
	fs.faces[key] = f
	return f
}

// LineHeight returns the distance between baselines for a face.
func LineHeight(f *text.GoTextFace) float64 {
	m := f.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Len returns the number of cached faces.
func (fs *FontSet) Len() int { return len(fs.faces) }

// Close drops every cached face and the font sources. The FontSet must not be
// used afterwards.
func (fs *FontSet) Close() {
	clear(fs.faces)
	fs.regular = nil
	fs.bold = nil
}
