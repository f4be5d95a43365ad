// Command bbox-tracker runs the tracking engine over a JSON frame stream,
// writing the labeled output document and a per-frame PNG visualization
// directory.
//
// Usage:
//
//	bbox-tracker --input frames.json --output tracks.json --vis-dir out/ \
//		[--max-dist 0.15] [--max-age 5] [--alpha 0.7]
//
// A defaults.ini file in the current working directory, if present, supplies a [tracker]
// section of defaults that flags override, grounded on the teacher's
// video.go ini.Load idiom.
package main

import (
	"fmt"
	"os"
	"time"

	tracker "github.com/bboxtrack/tracker"
	"github.com/bboxtrack/tracker/config"
	"github.com/bboxtrack/tracker/frame"
	"github.com/bboxtrack/tracker/vis"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bbox-tracker:", err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*tracker.InvariantViolation); ok {
				err = fmt.Errorf("invariant violation: %w", iv)
				return
			}
			panic(r)
		}
	}()

	cfg, cfgErr := config.Parse("defaults.ini", args)
	if cfgErr != nil {
		return cfgErr
	}

	in, openErr := os.Open(cfg.Input)
	if openErr != nil {
		return &tracker.IOFailureError{Path: cfg.Input, Err: openErr}
	}
	defer in.Close()

	frames, readErr := frame.ReadFrames(in)
	if readErr != nil {
		return readErr
	}

	if mkErr := os.MkdirAll(cfg.VisDir, 0o755); mkErr != nil {
		return &tracker.IOFailureError{Path: cfg.VisDir, Err: mkErr}
	}

	eng := tracker.New(cfg.TrackerConfig())
	driver := frame.NewDriver(eng)

	bar := newProgressBar(len(frames))

	results := make([]frame.Result, 0, len(frames))
	runErr := driver.Run(frames, func(i int, res frame.Result) error {
		results = append(results, res)

		visTracks := make([]vis.Track, len(res.Tracks))
		for j, tv := range res.Tracks {
			visTracks[j] = vis.Track{ID: tv.ID, X: tv.X, Y: tv.Y, W: tv.W, H: tv.H}
		}
		if visErr := vis.WriteFrame(cfg.VisDir, i, visTracks); visErr != nil {
			return &tracker.IOFailureError{Path: cfg.VisDir, Err: visErr}
		}

		_ = bar.Add(1)
		return nil
	})
	if runErr != nil {
		return runErr
	}

	out, createErr := os.Create(cfg.Output)
	if createErr != nil {
		return &tracker.IOFailureError{Path: cfg.Output, Err: createErr}
	}
	defer out.Close()

	return frame.WriteFrames(out, results)
}

// newProgressBar mirrors the teacher's video.go progress bar setup: known
// length, fps throughput, cleared once the run finishes.
func newProgressBar(total int) *progressbar.ProgressBar {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("tracking"),
		progressbar.OptionSetWidth(width/4),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("frames"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
