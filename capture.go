package vid2srt

import (
	"errors"
	"image"

	"gocv.io/x/gocv"
)

// VideoSource decodes frames from a video file through OpenCV. It
// implements FrameSource and owns the capture handle until Close.
type VideoSource struct {
	path string
	cap  *gocv.VideoCapture
	mat  gocv.Mat
}

// OpenVideo opens the video file at path for sequential decoding. The
// returned source must be closed by the caller. Failures to open the
// file, an unsupported container, or a missing frame rate all surface as
// a SourceOpenError.
func OpenVideo(path string) (*VideoSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, &SourceOpenError{Path: path, Err: err}
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, &SourceOpenError{Path: path}
	}
	if capture.Get(gocv.VideoCaptureFPS) <= 0 {
		capture.Close()
		return nil, &SourceOpenError{
			Path: path,
			Err:  errors.New("source reports no frame rate"),
		}
	}
	return &VideoSource{path: path, cap: capture, mat: gocv.NewMat()}, nil
}

// Read decodes the next frame. End of stream and decode failure both
// report ok == false, matching the capture API underneath.
func (s *VideoSource) Read() (image.Image, bool) {
	if ok := s.cap.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, false
	}
	frame, err := s.mat.ToImage()
	if err != nil {
		return nil, false
	}
	return frame, true
}

// FPS reports the frame rate declared by the container.
func (s *VideoSource) FPS() float64 {
	return s.cap.Get(gocv.VideoCaptureFPS)
}

// Close releases the decode buffer and the capture handle.
func (s *VideoSource) Close() error {
	matErr := s.mat.Close()
	capErr := s.cap.Close()
	if matErr != nil {
		return matErr
	}
	return capErr
}
