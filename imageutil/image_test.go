package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestNewGrayImage(t *testing.T) {
	img := NewGrayImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestGrayImageGetSet(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 128)

	if got := img.GetGray(5, 5); got != 128 {
		t.Errorf("Expected 128, got %d", got)
	}
}

func TestGrayImageClone(t *testing.T) {
	img := NewGrayImage(10, 10)
	img.SetGrayValue(5, 5, 200)

	clone := img.Clone()
	if clone.GetGray(5, 5) != img.GetGray(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetGrayValue(5, 5, 10)
	if img.GetGray(5, 5) != 200 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestGrayImageFromImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))

	// White should produce white (255)
	rgba.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	gray := GrayImageFromImage(rgba)
	if v := gray.GetGray(0, 0); v != 255 {
		t.Errorf("White pixel should convert to 255, got %d", v)
	}

	// Test black
	rgba.SetRGBA(0, 0, color.RGBA{A: 255})
	gray = GrayImageFromImage(rgba)
	if v := gray.GetGray(0, 0); v != 0 {
		t.Errorf("Black pixel should convert to 0, got %d", v)
	}

	// Test red (0.299 * 255 = 76.245)
	rgba.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	gray = GrayImageFromImage(rgba)
	if v := gray.GetGray(0, 0); v < 75 || v > 77 {
		t.Errorf("Red pixel should convert to ~76, got %d", v)
	}
}

func TestGrayImageFromImageOffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 15, 10))
	src.SetGray(7, 6, color.Gray{Y: 42})

	gray := GrayImageFromImage(src)
	if gray.Width() != 10 || gray.Height() != 5 {
		t.Errorf("Expected 10x5, got %dx%d", gray.Width(), gray.Height())
	}
	if v := gray.GetGray(2, 1); v != 42 {
		t.Errorf("Expected 42 at translated origin, got %d", v)
	}
}
