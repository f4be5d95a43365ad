package tracker

import (
	"github.com/bboxtrack/tracker/internal/geom"
	"github.com/bboxtrack/tracker/internal/kalman"
)

// Track is a believed persistent object: identity plus filtered state.
// The Tracker exclusively owns all Track records; a Track is mutated only
// by Predict (extrapolation) and Correct (assimilating a detection).
type Track struct {
	ID uint64

	filter *kalman.Filter

	// Rect is the track's current rectangle, read from the filter's state
	// after the most recent Predict or Correct (spec.md's "filtered"
	// rectangle, §9 "Raw vs. filtered output") — used for gating and
	// visualization, never emitted in a Label.
	Rect geom.Rect

	// LastRect is the raw detection rectangle from the most recent Correct,
	// distinct from Rect: this is what would be emitted in a Label were
	// this track matched again without further correction (kept for
	// inspection/debugging; the engine always emits the current frame's
	// own detection, not this cached value).
	LastRect geom.Rect

	LastTS          float64
	Age             int
	TimeSinceUpdate int
}

// newTrack creates a track from an unmatched detection, per spec.md §4.4
// step 6: zero initial velocity, identity initial covariance (inside the
// filter), age and time_since_update both 0.
func newTrack(id uint64, d Detection, ts float64) *Track {
	r := d.rect()
	return &Track{
		ID:       id,
		filter:   kalman.New(d.X, d.Y, d.W, d.H),
		Rect:     r,
		LastRect: r,
		LastTS:   ts,
	}
}

// predict extrapolates the track to ts, incrementing age and
// time_since_update, and refreshes Rect from the predicted state.
func (t *Track) predict(ts float64) {
	dt := ts - t.LastTS
	t.filter.Predict(dt)
	x, y, w, h := t.filter.Rect()
	t.Rect = geom.Rect{X: x, Y: y, W: w, H: h}
	t.Age++
	t.TimeSinceUpdate++
}

// correct assimilates detection d at time ts: refreshes Rect from the
// corrected state, records the raw rectangle, and resets the coasting
// counter.
func (t *Track) correct(d Detection, ts float64) {
	t.filter.Correct(d.X, d.Y, d.W, d.H)
	x, y, w, h := t.filter.Rect()
	t.Rect = geom.Rect{X: x, Y: y, W: w, H: h}
	t.LastRect = d.rect()
	t.LastTS = ts
	t.TimeSinceUpdate = 0
}
