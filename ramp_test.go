package vid2srt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asciisub/vid2srt/imageutil"
)

func TestNewGlyphRampRejectsShortRamps(t *testing.T) {
	_, err := NewGlyphRamp("")
	assert.Error(t, err)

	_, err = NewGlyphRamp("X")
	assert.Error(t, err)

	ramp, err := NewGlyphRamp("@ ")
	require.NoError(t, err)
	assert.Len(t, ramp, 2)
}

func TestGlyphRampCoverage(t *testing.T) {
	ramp := GlyphRamp(DefaultRamp)

	assert.Equal(t, DefaultRamp[0], ramp.Glyph(0), "darkest intensity maps to first glyph")
	assert.Equal(t, DefaultRamp[len(DefaultRamp)-1], ramp.Glyph(255), "brightest intensity maps to last glyph")

	// Every intensity must land inside the ramp, at the floor of
	// v*(L-1)/255.
	for v := 0; v <= 255; v++ {
		idx := v * (len(ramp) - 1) / 255
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(ramp))
		assert.Equal(t, ramp[idx], ramp.Glyph(uint8(v)))
	}
}

func TestGlyphRampMapImage(t *testing.T) {
	img := imageutil.NewGrayImage(2, 2)
	img.SetGrayValue(0, 0, 0)
	img.SetGrayValue(1, 0, 255)
	img.SetGrayValue(0, 1, 255)
	img.SetGrayValue(1, 1, 0)

	ramp := GlyphRamp(DefaultRamp)
	got := ramp.MapImage(img)

	// Row-major order, no line breaks.
	assert.Equal(t, "$  $", got)
}
