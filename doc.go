/*
Package tracker implements a bounding-box multi-object tracking engine.

Each call to Step advances the engine by one frame: existing tracks are
predicted forward with a constant-velocity Kalman filter, matched against
the frame's detections by exact minimum-cost bipartite assignment over a
blended IoU/centre-distance cost, matched tracks are corrected, unmatched
detections spawn new tracks, and tracks that have coasted past MaxAge are
culled.

# Basic Usage

	tr := tracker.New(tracker.Config{})

	for _, frame := range frames {
		labels := tr.Step(frame.Timestamp, frame.Detections)
		for _, l := range labels {
			fmt.Printf("id=%d rect=%+v\n", l.TrackID, l.Detection)
		}
	}

# Core Types

Detection is one frame's raw observation (x, y, w, h). Label pairs a
Detection with the track id it was associated with this frame. Track is
the engine's internal per-object state: its Kalman filter, current
rectangle, age, and time since its last correction.

# Identity

Track ids are allocated monotonically and never reused, even after a
track is culled.

A Tracker instance is single-threaded: Step must not be called
concurrently on the same Tracker.
*/
package tracker
