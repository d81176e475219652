package vid2srt

import "fmt"

// SourceOpenError indicates the video source could not be opened: the
// path does not exist, the container or codec is unsupported, or the
// source reports no usable frame rate.
type SourceOpenError struct {
	Path string
	Err  error
}

func (e *SourceOpenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("open video source %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("open video source %s", e.Path)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// SinkWriteError indicates the caption sink could not be created or
// written to.
type SinkWriteError struct {
	Err error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("write caption sink: %v", e.Err)
}

func (e *SinkWriteError) Unwrap() error { return e.Err }
