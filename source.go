package vid2srt

import "image"

// FrameSource yields decoded frames in presentation order. Sources are
// not safe for concurrent use; the converter reads them sequentially.
type FrameSource interface {
	// Read returns the next frame, or ok == false when the stream is
	// exhausted. A mid-stream decode failure also reports ok == false;
	// the decoder cannot distinguish the two conditions.
	Read() (frame image.Image, ok bool)

	// FPS reports the source frame rate as declared by the container.
	FPS() float64

	// Close releases the decoder. It must be called exactly once.
	Close() error
}
