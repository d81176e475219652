package vid2srt

import (
	"fmt"
	"math"
)

// Timeline computes the displayed interval of each frame from its index
// and the fixed per-frame duration.
type Timeline struct {
	// FrameDuration is the inter-frame interval in milliseconds.
	FrameDuration int64
}

// NewTimeline derives the per-frame duration from the source frame rate,
// rounded to the nearest millisecond.
func NewTimeline(fps float64) Timeline {
	return Timeline{FrameDuration: int64(math.Round(1000 / fps))}
}

// Interval returns the start and end timestamps in milliseconds for the
// 0-based frame index i. Consecutive intervals are contiguous: frame i
// ends exactly where frame i+1 starts.
func (t Timeline) Interval(i int64) (start, end int64) {
	return i * t.FrameDuration, (i + 1) * t.FrameDuration
}

// FormatTimestamp renders a millisecond count as an SRT timestamp,
// HH:MM:SS,mmm. Hours are not wrapped at 24.
func FormatTimestamp(ms int64) string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		ms/3600000, ms%3600000/60000, ms%60000/1000, ms%1000)
}
