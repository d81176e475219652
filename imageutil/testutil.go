package imageutil

// CreateGradientGray creates a horizontal gradient test image running
// from black on the left to white on the right.
func CreateGradientGray(width, height int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGrayValue(x, y, uint8(255*x/(width-1)))
		}
	}
	return img
}

// CreateSolidGray creates an image with every pixel at the same
// intensity.
func CreateSolidGray(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGrayValue(x, y, v)
		}
	}
	return img
}

// CalculateMSEGray calculates the Mean Squared Error between two
// grayscale images of the same dimensions.
func CalculateMSEGray(img1, img2 *GrayImage) float64 {
	width, height := img1.Width(), img1.Height()
	var sumSq float64
	count := float64(width * height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(img1.GetGray(x, y)) - float64(img2.GetGray(x, y))
			sumSq += d * d
		}
	}

	return sumSq / count
}
