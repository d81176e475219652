package imageutil

// Normalize linearly rescales the image so the darkest observed
// intensity maps to 0 and the brightest to 255 (min-max stretch). A flat
// image, where every pixel carries the same value, is returned unchanged;
// there is no range to stretch.
func Normalize(img *GrayImage) *GrayImage {
	width, height := img.Width(), img.Height()
	out := NewGrayImage(width, height)
	if width == 0 || height == 0 {
		return out
	}

	lo, hi := img.GetGray(0, 0), img.GetGray(0, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := img.GetGray(x, y)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	if lo == hi {
		copy(out.Pix, img.Pix)
		return out
	}

	span := int(hi) - int(lo)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := int(img.GetGray(x, y)) - int(lo)
			out.SetGrayValue(x, y, uint8(v*255/span))
		}
	}
	return out
}

// ApplyGain multiplies every intensity by gain, clamping the result to
// [0, 255] (saturating, not wrapping).
func ApplyGain(img *GrayImage, gain float64) *GrayImage {
	width, height := img.Width(), img.Height()
	out := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(img.GetGray(x, y)) * gain
			if v > 255 {
				v = 255
			}
			if v < 0 {
				v = 0
			}
			out.SetGrayValue(x, y, uint8(v))
		}
	}
	return out
}
