// Package tracker implements the bounding-box tracking engine described in
// SPEC_FULL.md: a per-frame predict/associate/update/spawn/cull cycle over
// an 8-D constant-velocity Kalman filter per track, with detection-to-track
// assignment via exact minimum-cost bipartite matching.
//
// The engine is strictly single-threaded and synchronous: one Step call
// runs to completion before the next begins. A host that needs concurrent
// tracking should run independent Tracker instances on separate
// goroutines, each owning its own state.
package tracker

import (
	"fmt"

	"github.com/bboxtrack/tracker/internal/assign"
)

// Default parameter values, per spec.md §4.4.
const (
	DefaultMaxDist = 0.15
	DefaultMaxAge  = 5
	DefaultAlpha   = 0.7
)

// Config holds the Tracker's gating and weighting parameters.
type Config struct {
	// MaxDist is the centre-distance gate: pairs farther apart than this
	// (in normalized coordinates) are never associated.
	MaxDist float64
	// MaxAge is the longest number of frames a track may coast
	// (time_since_update) before being culled.
	MaxAge int
	// Alpha trades off IoU against centre distance in the cost function,
	// in [0, 1].
	Alpha float64
}

// defaulted returns a copy of c with zero fields replaced by spec.md's
// stated defaults.
func (c Config) defaulted() Config {
	if c.MaxDist == 0 {
		c.MaxDist = DefaultMaxDist
	}
	if c.MaxAge == 0 {
		c.MaxAge = DefaultMaxAge
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	return c
}

// Tracker is the tracking engine. It exclusively owns all Track records and
// the identity counter; a Tracker instance must not be used from more than
// one goroutine concurrently.
type Tracker struct {
	cfg    Config
	tracks []*Track
	ids    idAllocator
}

// New constructs a Tracker with the given gating/weighting parameters.
// Zero-valued fields in cfg are replaced with spec.md's defaults
// (MaxDist=0.15, MaxAge=5, Alpha=0.7).
func New(cfg Config) *Tracker {
	return &Tracker{cfg: cfg.defaulted()}
}

// Step advances the engine by one frame at time ts (seconds since epoch),
// associating detections with existing tracks, correcting matches, spawning
// tracks for unmatched detections, and culling tracks that have coasted too
// long. It implements spec.md §4.4's 8-step pipeline exactly, and returns
// the labels for detections associated this frame, in input order.
//
// Step panics on an InvariantViolation (a non-finite cost or a solver
// contract violation): per spec.md §7, these are fatal programming errors,
// never partially committed mid-step.
func (tr *Tracker) Step(ts float64, dets []Detection) []Label {
	// 1. Predict.
	for _, t := range tr.tracks {
		t.predict(ts)
	}

	nTracks := len(tr.tracks)
	nDets := len(dets)
	n := nTracks
	if nDets > n {
		n = nDets
	}

	labels := make([]Label, 0, nDets)
	if n == 0 {
		tr.cull()
		return labels
	}

	// 2. Build cost matrix.
	cost := buildCostMatrix(tr.tracks, dets, tr.cfg.Alpha, tr.cfg.MaxDist)

	// 3. Assign.
	assignment := solveAssignment(cost)

	// 4. Filter real matches.
	trToDet := make([]int, nTracks)
	for i := range trToDet {
		trToDet[i] = -1
	}
	detToTr := make([]int, nDets)
	for j := range detToTr {
		detToTr[j] = -1
	}
	for i := 0; i < nTracks; i++ {
		j := assignment[i]
		if j < nDets && cost[i][j] < bigCost {
			trToDet[i] = j
			detToTr[j] = i
		}
	}

	// 5. Correct matched tracks.
	for i, j := range trToDet {
		if j != -1 {
			tr.tracks[i].correct(dets[j], ts)
		}
	}

	// 6. Spawn new tracks for unmatched detections.
	for j, i := range detToTr {
		if i == -1 {
			nt := newTrack(tr.ids.allocate(), dets[j], ts)
			tr.tracks = append(tr.tracks, nt)
			detToTr[j] = len(tr.tracks) - 1
		}
	}

	// 7. Emit labels in detection order, for every associated detection
	// including ones that just spawned a new track this frame.
	for j := 0; j < nDets; j++ {
		i := detToTr[j]
		if i != -1 {
			labels = append(labels, Label{TrackID: tr.tracks[i].ID, Detection: dets[j]})
		}
	}

	// 8. Cull, after labels are emitted so a culled track's final
	// correction is not lost.
	tr.cull()

	return labels
}

// cull removes every track with time_since_update > max_age.
func (tr *Tracker) cull() {
	alive := tr.tracks[:0]
	for _, t := range tr.tracks {
		if t.TimeSinceUpdate <= tr.cfg.MaxAge {
			alive = append(alive, t)
		}
	}
	tr.tracks = alive
}

// Tracks returns a read-only view of the engine's current tracks, for
// visualization: each entry's id and filtered rectangle.
func (tr *Tracker) Tracks() []TrackView {
	out := make([]TrackView, len(tr.tracks))
	for i, t := range tr.tracks {
		out[i] = TrackView{ID: t.ID, X: t.Rect.X, Y: t.Rect.Y, W: t.Rect.W, H: t.Rect.H}
	}
	return out
}

// TrackView is a read-only snapshot of a track's identity and current
// rectangle, returned by Tracker.Tracks.
type TrackView struct {
	ID         uint64
	X, Y, W, H float64
}

// solveAssignment wraps internal/assign.Solve, translating a solver
// contract violation into the engine's InvariantViolation panic (spec.md §7).
func solveAssignment(cost [][]float64) (result []int) {
	defer func() {
		if r := recover(); r != nil {
			panic(&InvariantViolation{Reason: fmt.Sprintf("assignment solver: %v", r)})
		}
	}()
	return assign.Solve(cost)
}
