package imageutil

import "testing"

func TestResizeGray(t *testing.T) {
	img := CreateGradientGray(100, 100)

	// Downscale
	resized := ResizeGray(img, 50, 50, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 50 {
		t.Errorf("Expected 50x50, got %dx%d", resized.Width(), resized.Height())
	}

	// Upscale
	resized = ResizeGray(img, 200, 200, InterpolationLinear)
	if resized.Width() != 200 || resized.Height() != 200 {
		t.Errorf("Expected 200x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeGrayPreservesSolid(t *testing.T) {
	img := CreateSolidGray(64, 32, 153)

	resized := ResizeGray(img, 4, 1, InterpolationArea)
	for x := 0; x < 4; x++ {
		if v := resized.GetGray(x, 0); v != 153 {
			t.Errorf("Uniform image should resample to the same value, got %d at x=%d", v, x)
		}
	}
}

func TestResizeGrayZeroHeight(t *testing.T) {
	img := CreateGradientGray(100, 1)

	resized := ResizeGray(img, 4, 0, InterpolationArea)
	if resized.Width() != 4 || resized.Height() != 0 {
		t.Errorf("Expected degenerate 4x0, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeGrayNearest(t *testing.T) {
	img := NewGrayImage(2, 2)
	img.SetGrayValue(0, 0, 10)
	img.SetGrayValue(1, 0, 20)
	img.SetGrayValue(0, 1, 30)
	img.SetGrayValue(1, 1, 40)

	resized := ResizeGray(img, 2, 2, InterpolationNearest)
	if resized.GetGray(0, 0) != 10 || resized.GetGray(1, 1) != 40 {
		t.Errorf("Identity nearest resize should preserve pixels, got %v", resized.Pix)
	}
}
