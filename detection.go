package tracker

import (
	"fmt"

	"github.com/bboxtrack/tracker/internal/geom"
)

// Detection is a single axis-aligned bounding box reported by an upstream
// detector for one frame, with no identity. Detections are immutable and
// borrowed by the engine for the duration of one Step call.
type Detection struct {
	X, Y, W, H float64
}

// rect converts a Detection to the internal geometry representation used
// for cost computation.
func (d Detection) rect() geom.Rect {
	return geom.Rect{X: d.X, Y: d.Y, W: d.W, H: d.H}
}

// Validate reports whether d satisfies spec.md's Detection invariant:
// w>0 and h>0. Callers (the frame driver) reject malformed detections at
// ingest; the engine itself assumes validated input.
func (d Detection) Validate() error {
	if d.W <= 0 || d.H <= 0 {
		return &MalformedInputError{
			Field:  "w/h",
			Reason: fmt.Sprintf("detection (%v,%v,%v,%v) must have w>0 and h>0", d.X, d.Y, d.W, d.H),
		}
	}
	return nil
}
