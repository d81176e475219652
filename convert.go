// Package vid2srt converts video files into SRT-like caption streams
// where each block carries an ASCII-art rendering of one frame.
package vid2srt

import (
	"context"
	"io"
	"os"
)

// ProgressFunc receives the running frame count while a conversion is in
// flight. It is an observability hook, not part of the data contract.
type ProgressFunc func(frames int)

// FrameHook receives each rendered frame body before it is written to
// the sink. Used for things like previewing the first frame.
type FrameHook func(index int, body string)

// Converter drives the conversion: it owns the frame loop, assigns
// sequential 1-based indices, and appends one caption block per frame to
// the sink in decode order.
type Converter struct {
	Width            int
	Ramp             GlyphRamp
	ProgressInterval int
	Progress         ProgressFunc
	Hook             FrameHook
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: Width=100, Ramp=DefaultRamp, progress every 30 frames.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		Width:            100,
		Ramp:             GlyphRamp(DefaultRamp),
		ProgressInterval: 30,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithWidth sets the target character-grid width.
func WithWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.Width = width
	}
}

// WithRamp sets the glyph ramp used for quantization.
func WithRamp(ramp GlyphRamp) ConverterOption {
	return func(c *Converter) {
		c.Ramp = ramp
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn ProgressFunc) ConverterOption {
	return func(c *Converter) {
		c.Progress = fn
	}
}

// WithProgressInterval sets how many frames pass between progress
// reports.
func WithProgressInterval(frames int) ConverterOption {
	return func(c *Converter) {
		c.ProgressInterval = frames
	}
}

// WithFrameHook sets a callback invoked with every rendered frame body.
func WithFrameHook(fn FrameHook) ConverterOption {
	return func(c *Converter) {
		c.Hook = fn
	}
}

// Convert reads every frame from src, renders it, and writes one caption
// block per frame to sink. The source is closed on every exit path. A
// source that yields no frames produces an empty stream and no error.
//
// ctx is checked between frames; on cancellation the sink is flushed
// before returning so the truncated stream is still well-formed, and the
// context's error is returned. Returns the number of frames written.
func (c *Converter) Convert(ctx context.Context, src FrameSource, sink io.Writer) (int, error) {
	defer src.Close()

	timeline := NewTimeline(src.FPS())
	renderer := &FrameRenderer{Width: c.Width, Ramp: c.Ramp}
	cw := NewCaptionWriter(sink)

	frames := 0
	for {
		if ctx.Err() != nil {
			if err := cw.Flush(); err != nil {
				return frames, err
			}
			return frames, ctx.Err()
		}

		frame, ok := src.Read()
		if !ok {
			break
		}

		start, end := timeline.Interval(int64(frames))
		block := CaptionBlock{
			Index: frames + 1,
			Start: start,
			End:   end,
			Body:  renderer.Render(frame),
		}
		if c.Hook != nil {
			c.Hook(block.Index, block.Body)
		}
		if err := cw.WriteBlock(block); err != nil {
			return frames, err
		}

		frames++
		if c.Progress != nil && c.ProgressInterval > 0 && frames%c.ProgressInterval == 0 {
			c.Progress(frames)
		}
	}

	if err := cw.Flush(); err != nil {
		return frames, err
	}
	return frames, nil
}

// ConvertFile opens the video at inputPath, converts it, and writes the
// caption stream to outputPath. Both handles are released on every exit
// path. Returns the number of frames written.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (int, error) {
	src, err := OpenVideo(inputPath)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		src.Close()
		return 0, &SinkWriteError{Err: err}
	}

	frames, convErr := c.Convert(ctx, src, out)
	if closeErr := out.Close(); closeErr != nil && convErr == nil {
		convErr = &SinkWriteError{Err: closeErr}
	}
	return frames, convErr
}
