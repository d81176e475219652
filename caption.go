package vid2srt

import (
	"bufio"
	"fmt"
	"io"
)

// CaptionBlock is one SRT-like unit: a 1-based index, the displayed
// interval in milliseconds, and the rendered frame body. Blocks are
// written once and never mutated.
type CaptionBlock struct {
	Index int
	Start int64
	End   int64
	// Body is the rendered frame with a line terminator after every row,
	// including the last. Empty for degenerate zero-row frames.
	Body string
}

// CaptionWriter serializes CaptionBlocks to a sink, one after another in
// index order. Writes are buffered; call Flush when the stream ends.
type CaptionWriter struct {
	w *bufio.Writer
}

// NewCaptionWriter wraps w in a buffered caption sink.
func NewCaptionWriter(w io.Writer) *CaptionWriter {
	return &CaptionWriter{w: bufio.NewWriter(w)}
}

// WriteBlock appends one block: the index line, the interval line, the
// body rows, and a trailing blank line separating it from the next block.
func (cw *CaptionWriter) WriteBlock(b CaptionBlock) error {
	_, err := fmt.Fprintf(cw.w, "%d\n%s --> %s\n%s\n",
		b.Index, FormatTimestamp(b.Start), FormatTimestamp(b.End), b.Body)
	if err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}

// Flush pushes any buffered output through to the underlying sink.
func (cw *CaptionWriter) Flush() error {
	if err := cw.w.Flush(); err != nil {
		return &SinkWriteError{Err: err}
	}
	return nil
}
