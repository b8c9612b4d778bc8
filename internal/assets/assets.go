// Package assets bundles the overlay font into the binary.
package assets

import (
	_ "embed"
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/san-kum/pendulum/internal/dynamo"
)

// FontFileType is the extension raylib expects for in-memory font data.
const FontFileType = ".ttf"

//go:embed DejaVuSans.ttf
var Font []byte

// Codepoints lists every rune the overlays can render: printable ASCII plus
// the Greek letters used in the labels.
func Codepoints() []rune {
	runes := make([]rune, 0, 95+2)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, 'ω', 'θ')
}

// CheckGlyphs parses the embedded font and verifies it has a glyph for every
// rune in runes.
func CheckGlyphs(runes []rune) error {
	f, err := sfnt.Parse(Font)
	if err != nil {
		return fmt.Errorf("%w: parse embedded font: %v", dynamo.ErrFontLoad, err)
	}

	var buf sfnt.Buffer
	for _, r := range runes {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return fmt.Errorf("%w: glyph lookup %q: %v", dynamo.ErrFontLoad, r, err)
		}
		if idx == 0 && r != ' ' {
			return fmt.Errorf("%w: no glyph for %q", dynamo.ErrFontLoad, r)
		}
	}
	return nil
}
