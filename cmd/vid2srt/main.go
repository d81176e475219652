package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/asciisub/vid2srt"
)

// config carries the environment-driven defaults; flags override them.
type config struct {
	Width    int    `env:"VID2SRT_WIDTH"     envDefault:"100"`
	Output   string `env:"VID2SRT_OUTPUT"    envDefault:"frames.srt"`
	LogLevel string `env:"VID2SRT_LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	inputFile := flag.String("input", "",
		"Path to the input video file (required)")
	targetWidth := flag.Int("width", cfg.Width,
		"Target width of the ASCII art in characters")
	outputFile := flag.String("output", cfg.Output,
		"Path to the output caption file")
	previewFile := flag.String("preview", "",
		"Optional path to save a PNG preview of the first frame")
	fontPath := flag.String("font", "",
		"TTF font used for the PNG preview")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the video using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *targetWidth <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -width must be a positive integer")
		os.Exit(1)
	}
	if *previewFile != "" && *fontPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -preview requires -font")
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []vid2srt.ConverterOption{
		vid2srt.WithWidth(*targetWidth),
		vid2srt.WithProgress(func(frames int) {
			log.Info("processed frames", zap.Int("frames", frames))
		}),
	}
	if *previewFile != "" {
		opts = append(opts, vid2srt.WithFrameHook(func(index int, body string) {
			if index != 1 {
				return
			}
			err := vid2srt.RenderPreview(body, *previewFile,
				vid2srt.PreviewOptions{FontPath: *fontPath})
			if err != nil {
				log.Warn("preview rendering failed", zap.Error(err))
				return
			}
			log.Info("preview written", zap.String("path", *previewFile))
		}))
	}

	conv := vid2srt.NewConverter(opts...)
	frames, err := conv.ConvertFile(ctx, *inputFile, *outputFile)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr,
				"Interrupted after %d frames; partial output is in %s\n",
				frames, *outputFile)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Conversion complete. %d frames written to %s\n", frames, *outputFile)
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := logCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
