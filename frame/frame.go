// Package frame is the frame driver: it feeds timestamped detection
// batches to a tracker.Tracker and collects per-frame labelings. It owns
// JSON ingest/emit and ISO-8601-ish timestamp parsing/formatting, the
// external collaborators spec.md §1 scopes out of the tracking engine
// itself.
//
// The driver never calls Tracker.Step concurrently: it is a single
// sequential loop over an ordered frame stream, matching the teacher's
// own single-threaded video frame loop (video.go's Frames/Write).
package frame

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	tracker "github.com/bboxtrack/tracker"
)

// timestampLayout is the canonical output layout: six-digit microseconds,
// always present, per spec.md §6.
const timestampLayout = "2006-01-02T15:04:05.000000"

// inputLayouts are tried in order when parsing an input timestamp, since
// fractional seconds are optional on input.
var inputLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Detection mirrors the wire format of one input detection.
type Detection struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// InputFrame mirrors the wire format of one input frame.
type InputFrame struct {
	Timestamp  string      `json:"timestamp"`
	Detections []Detection `json:"detections"`
}

// trackLabel mirrors the wire format of one emitted track label.
type trackLabel struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// outputFrame mirrors the wire format of one output frame.
type outputFrame struct {
	Timestamp string       `json:"timestamp"`
	Tracks    []trackLabel `json:"tracks,omitempty"`
}

// ParseTimestamp parses an input timestamp in spec.md §6's layout (UTC,
// fractional seconds optional).
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, &tracker.MalformedInputError{
		Timestamp: s,
		Field:     "timestamp",
		Reason:    fmt.Sprintf("unparseable ISO-8601 timestamp: %v", lastErr),
	}
}

// FormatTimestamp renders t in the canonical output layout: six-digit
// microseconds, rounded to the nearest microsecond.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Round(time.Microsecond).Format(timestampLayout)
}

// ReadFrames decodes the input JSON document from r: an array of frame
// objects in chronological order. Every detection is validated (w>0, h>0);
// the first violation is reported with the offending timestamp, per
// spec.md §6.
func ReadFrames(r io.Reader) ([]InputFrame, error) {
	var raw []InputFrame
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &tracker.MalformedInputError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	for _, f := range raw {
		if _, err := ParseTimestamp(f.Timestamp); err != nil {
			return nil, err
		}
		for _, d := range f.Detections {
			det := tracker.Detection{X: d.X, Y: d.Y, W: d.W, H: d.H}
			if err := det.Validate(); err != nil {
				if me, ok := err.(*tracker.MalformedInputError); ok {
					me.Timestamp = f.Timestamp
				}
				return nil, err
			}
		}
	}
	return raw, nil
}

// Result is one frame's outcome: the emitted labels (engine output) plus
// the tracker's full track view at that point, for visualization.
type Result struct {
	Timestamp time.Time
	Labels    []tracker.Label
	Tracks    []tracker.TrackView
}

// Driver feeds an ordered frame stream to a Tracker, one Step per frame.
type Driver struct {
	eng *tracker.Tracker
}

// NewDriver wraps a Tracker.
func NewDriver(eng *tracker.Tracker) *Driver {
	return &Driver{eng: eng}
}

// Run steps the engine once per frame in frames (which must already be in
// chronological order; ReadFrames does not itself sort), calling onFrame
// after every step with that frame's Result. onFrame is invoked
// synchronously within Run's single loop — never concurrently.
func (d *Driver) Run(frames []InputFrame, onFrame func(int, Result) error) error {
	for i, f := range frames {
		ts, err := ParseTimestamp(f.Timestamp)
		if err != nil {
			return err
		}
		dets := make([]tracker.Detection, len(f.Detections))
		for j, det := range f.Detections {
			dets[j] = tracker.Detection{X: det.X, Y: det.Y, W: det.W, H: det.H}
		}

		labels := d.eng.Step(secondsSinceEpoch(ts), dets)

		res := Result{Timestamp: ts, Labels: labels, Tracks: d.eng.Tracks()}
		if onFrame != nil {
			if err := onFrame(i, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func secondsSinceEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// WriteFrames encodes results as the output JSON document described in
// spec.md §6: one object per input frame, in the same order, each
// detection's track id and raw rectangle in input-detection order.
func WriteFrames(w io.Writer, results []Result) error {
	out := make([]outputFrame, len(results))
	for i, r := range results {
		of := outputFrame{Timestamp: FormatTimestamp(r.Timestamp)}
		if len(r.Labels) > 0 {
			of.Tracks = make([]trackLabel, len(r.Labels))
			for j, l := range r.Labels {
				of.Tracks[j] = trackLabel{
					ID: int(l.TrackID),
					X:  l.Detection.X,
					Y:  l.Detection.Y,
					W:  l.Detection.W,
					H:  l.Detection.H,
				}
			}
		}
		out[i] = of
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
