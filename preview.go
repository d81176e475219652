package vid2srt

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/asciisub/vid2srt/imageutil"
)

// PreviewOptions configure RenderPreview.
type PreviewOptions struct {
	// FontPath is the TTF font used to rasterize glyphs. Required; a
	// monospace font keeps the columns aligned.
	FontPath string
	// FontSize in points. Defaults to 12.
	FontSize float64
}

// RenderPreview rasterizes one rendered frame body to a PNG file, white
// glyphs on black. Handy for checking output without loading the caption
// stream into a player.
func RenderPreview(body, path string, opts PreviewOptions) error {
	if body == "" {
		return errors.New("nothing to preview: frame body is empty")
	}

	fontBytes, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	size := opts.FontSize
	if size <= 0 {
		size = 12
	}

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}

	// Cell geometry from the font metrics; the advance of 'M' stands in
	// for the monospace cell width.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return errors.New("font has no 'M' glyph to derive cell width from")
	}
	cellWidth := advance.Ceil()

	img := image.NewGray(image.Rect(0, 0, cols*cellWidth, len(lines)*lineHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	for i, line := range lines {
		pt := freetype.Pt(0, i*lineHeight+ascent)
		if _, err := ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("draw preview line %d: %w", i+1, err)
		}
	}

	return imageutil.SavePNG(img, path)
}
