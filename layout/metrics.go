package layout

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontStyle selects the regular or bold face.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
)

func (s FontStyle) String() string {
	if s == Bold {
		return "bold"
	}
	return "regular"
}

// Measurer reports the rendered width of a string in points.
type Measurer interface {
	Width(text string, style FontStyle, size float64) float64
}

// FontSet holds the parsed regular and bold faces together with their
// source bytes, which the PDF writer embeds so that drawn glyphs use the
// same advances the layout measured. A FontSet is read-only after
// LoadFonts returns and may be shared between concurrent builds.
type FontSet struct {
	regular    *sfnt.Font
	bold       *sfnt.Font
	regularTTF []byte
	boldTTF    []byte
}

// LoadFonts parses the given TrueType sources.
func LoadFonts(regularTTF, boldTTF []byte) (*FontSet, error) {
	regular, err := parseFont("regular", regularTTF)
	if err != nil {
		return nil, err
	}
	bold, err := parseFont("bold", boldTTF)
	if err != nil {
		return nil, err
	}
	return &FontSet{
		regular:    regular,
		bold:       bold,
		regularTTF: regularTTF,
		boldTTF:    boldTTF,
	}, nil
}

// LoadDefaultFonts loads the Go regular and bold faces.
func LoadDefaultFonts() (*FontSet, error) {
	return LoadFonts(goregular.TTF, gobold.TTF)
}

func parseFont(name string, src []byte) (*sfnt.Font, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: %s face is empty", ErrAssetUnavailable, name)
	}
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s face: %v", ErrAssetUnavailable, name, err)
	}
	return f, nil
}

// TTF returns the raw TrueType bytes of the face.
func (fs *FontSet) TTF(style FontStyle) []byte {
	if style == Bold {
		return fs.boldTTF
	}
	return fs.regularTTF
}

// Width returns the advance width of text at size points. Kerning is not
// applied because the PDF writer does not apply it either.
func (fs *FontSet) Width(text string, style FontStyle, size float64) float64 {
	f := fs.regular
	if style == Bold {
		f = fs.bold
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size*64 + 0.5)
	var w fixed.Int26_6
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		w += adv
	}
	return float64(w) / 64
}
