package kalman

import (
	"testing"

	"github.com/bboxtrack/tracker/internal/testutil"
)

func TestNew_InitialState(t *testing.T) {
	f := New(0.5, 0.25, 0.1, 0.2)
	x, y, w, h := f.Rect()
	testutil.AssertAlmostEqual(t, x, 0.5, 1e-12, "initial x")
	testutil.AssertAlmostEqual(t, y, 0.25, 1e-12, "initial y")
	testutil.AssertAlmostEqual(t, w, 0.1, 1e-12, "initial w")
	testutil.AssertAlmostEqual(t, h, 0.2, 1e-12, "initial h")
}

func TestPredict_StationaryObjectHoldsPosition(t *testing.T) {
	f := New(0.5, 0.5, 0.1, 0.1)
	// Zero initial velocity: predicting forward in time shouldn't move the box.
	f.Predict(0.033)
	x, y, w, h := f.Rect()
	testutil.AssertAlmostEqual(t, x, 0.5, 1e-9, "x unchanged with zero velocity")
	testutil.AssertAlmostEqual(t, y, 0.5, 1e-9, "y unchanged with zero velocity")
	testutil.AssertAlmostEqual(t, w, 0.1, 1e-9, "w unchanged with zero velocity")
	testutil.AssertAlmostEqual(t, h, 0.1, 1e-9, "h unchanged with zero velocity")
}

func TestPredict_DegenerateDTGuarded(t *testing.T) {
	f := New(0.5, 0.5, 0.1, 0.1)
	// dt<=0 must not panic and must leave the filter usable.
	f.Predict(0)
	f.Predict(-1)
	x, y, _, _ := f.Rect()
	testutil.AssertAlmostEqual(t, x, 0.5, 1e-6, "degenerate dt barely moves a stationary object")
	testutil.AssertAlmostEqual(t, y, 0.5, 1e-6, "degenerate dt barely moves a stationary object")
}

func TestCorrect_PullsStateTowardMeasurement(t *testing.T) {
	f := New(0.5, 0.5, 0.1, 0.1)
	f.Predict(0.033)
	f.Correct(0.52, 0.51, 0.1, 0.1)
	x, y, _, _ := f.Rect()
	if x <= 0.5 || x >= 0.52 {
		t.Errorf("expected corrected x between prior (0.5) and measurement (0.52), got %v", x)
	}
	if y <= 0.5 || y >= 0.51 {
		t.Errorf("expected corrected y between prior (0.5) and measurement (0.51), got %v", y)
	}
}

func TestCorrect_RepeatedConvergesToMeasurement(t *testing.T) {
	f := New(0, 0, 1, 1)
	for i := 0; i < 50; i++ {
		f.Predict(0.033)
		f.Correct(1, 1, 1, 1)
	}
	x, y, w, h := f.Rect()
	testutil.AssertAlmostEqual(t, x, 1.0, 1e-3, "x converges to repeated measurement")
	testutil.AssertAlmostEqual(t, y, 1.0, 1e-3, "y converges to repeated measurement")
	testutil.AssertAlmostEqual(t, w, 1.0, 1e-3, "w converges to repeated measurement")
	testutil.AssertAlmostEqual(t, h, 1.0, 1e-3, "h converges to repeated measurement")
}

func TestPredict_ConstantVelocityExtrapolates(t *testing.T) {
	f := New(0, 0, 1, 1)
	// Drive a constant velocity into the filter by repeatedly correcting
	// toward a linearly moving measurement, then verify a further predict
	// continues to move in the same direction.
	for i := 1; i <= 10; i++ {
		f.Predict(1.0)
		f.Correct(float64(i), 0, 1, 1)
	}
	xBefore, _, _, _ := f.Rect()
	f.Predict(1.0)
	xAfter, _, _, _ := f.Rect()
	if xAfter <= xBefore {
		t.Errorf("expected predicted x to keep increasing with learned positive velocity, before=%v after=%v", xBefore, xAfter)
	}
}
