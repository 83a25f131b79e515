package graphlab

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFontSetCachesFaces(t *testing.T) {
	fs, err := DefaultFontSet()
	if err != nil {
		t.Fatalf("DefaultFontSet: %v", err)
	}
	a := fs.Face(11, false)
	b := fs.Face(11, false)
	if a != b {
		t.Error("same size and weight should reuse the face")
	}
	bold := fs.Face(11, true)
	if bold == a {
		t.Error("bold face should differ from regular")
	}
	if bold.Source == a.Source {
		t.Error("bold face should use the bold source")
	}
	fs.Face(16, true)
	if fs.Len() != 3 {
		t.Errorf("Len = %d, want 3", fs.Len())
	}
	if LineHeight(a) <= 0 {
		t.Errorf("LineHeight = %v", LineHeight(a))
	}

	fs.Close()
	if fs.Len() != 0 {
		t.Errorf("Len after Close = %d, want 0", fs.Len())
	}
}

func TestNewFontSetWithoutBold(t *testing.T) {
	fs, err := NewFontSet(goregular.TTF, nil)
	if err != nil {
		t.Fatalf("NewFontSet: %v", err)
	}
	if fs.Face(12, true).Source != fs.Face(12, false).Source {
		t.Error("bold text should fall back to the regular source")
	}
}

func TestNewFontSetInvalidData(t *testing.T) {
	if _, err := NewFontSet([]byte("not a font"), nil); err == nil {
		t.Error("expected parse error")
	}
}
