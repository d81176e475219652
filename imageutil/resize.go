package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// ResizeGray resizes a grayscale image to the specified dimensions using
// the given interpolation method. A non-positive target dimension yields
// a degenerate empty image of the requested geometry rather than an
// error; extreme aspect ratios legitimately resample to zero rows.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	dst := NewGrayImage(width, height)
	if width == 0 || height == 0 || img.Width() == 0 || img.Height() == 0 {
		return dst
	}
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		// CatmullRom provides high quality for both up and down scaling
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Over, nil)
	return dst
}
