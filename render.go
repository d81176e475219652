package vid2srt

import (
	"image"
	"strings"

	"github.com/asciisub/vid2srt/imageutil"
)

const (
	// contrastGain is the fixed multiplicative boost applied after the
	// min-max stretch.
	contrastGain = 1.2

	// charAspect compensates for glyph cells being roughly twice as tall
	// as they are wide; without it the rendered art is vertically
	// stretched.
	charAspect = 0.5
)

// FrameRenderer converts one decoded frame into a block of glyph rows,
// each exactly Width characters wide. It holds no mutable state; Render
// is a pure function of the frame and the configuration.
type FrameRenderer struct {
	Width int
	Ramp  GlyphRamp
}

// Render runs a frame through the pipeline: luminance conversion,
// min-max normalization, contrast gain, aspect-preserving resample, and
// glyph quantization. The returned text has a line terminator after every
// row, including the last. A frame whose aspect ratio resamples to zero
// rows yields an empty string.
func (fr *FrameRenderer) Render(frame image.Image) string {
	gray := imageutil.GrayImageFromImage(frame)
	if gray.Width() == 0 || gray.Height() == 0 {
		return ""
	}

	gray = imageutil.Normalize(gray)
	gray = imageutil.ApplyGain(gray, contrastGain)

	aspectRatio := float64(gray.Height()) / float64(gray.Width())
	height := int(aspectRatio * float64(fr.Width) * charAspect)
	resized := imageutil.ResizeGray(gray, fr.Width, height, imageutil.InterpolationArea)

	glyphs := fr.Ramp.MapImage(resized)

	var sb strings.Builder
	sb.Grow(len(glyphs) + height)
	for i := 0; i < len(glyphs); i += fr.Width {
		end := i + fr.Width
		if end > len(glyphs) {
			end = len(glyphs)
		}
		sb.WriteString(glyphs[i:end])
		sb.WriteByte('\n')
	}
	return sb.String()
}
