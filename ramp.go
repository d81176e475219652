package vid2srt

import (
	"errors"
	"strings"

	"github.com/asciisub/vid2srt/imageutil"
)

// DefaultRamp is the glyph ramp used by the converter, ordered from
// darkest to lightest. The two trailing spaces widen the bright band so
// highlights wash out instead of ending in a hard dot.
const DefaultRamp = "$#H&@*+=-:.  "

// GlyphRamp is an ordered set of glyphs representing increasing
// brightness. It is immutable once constructed.
type GlyphRamp []byte

// NewGlyphRamp builds a ramp from a darkest-to-lightest character string.
// A ramp needs at least two characters to quantize against.
func NewGlyphRamp(chars string) (GlyphRamp, error) {
	if len(chars) < 2 {
		return nil, errors.New("glyph ramp needs at least two characters")
	}
	return GlyphRamp(chars), nil
}

// Glyph returns the ramp character for an intensity in [0, 255].
// Intensity 0 maps to the first glyph, 255 to the last.
func (r GlyphRamp) Glyph(v uint8) byte {
	return r[int(v)*(len(r)-1)/255]
}

// MapImage quantizes every pixel of img into a ramp glyph, concatenated
// in row-major order. No line breaks are inserted; splitting into rows is
// the renderer's job.
func (r GlyphRamp) MapImage(img *imageutil.GrayImage) string {
	width, height := img.Width(), img.Height()
	var sb strings.Builder
	sb.Grow(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sb.WriteByte(r.Glyph(img.GetGray(x, y)))
		}
	}
	return sb.String()
}
