package geom

import (
	"testing"

	"github.com/bboxtrack/tracker/internal/testutil"
)

func TestIoU_PerfectOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 0, Y: 0, W: 10, H: 10}
	testutil.AssertAlmostEqual(t, IoU(a, b), 1.0, 1e-10, "perfect overlap should have IoU 1.0")
}

func TestIoU_NoOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 20, Y: 20, W: 10, H: 10}
	testutil.AssertAlmostEqual(t, IoU(a, b), 0.0, 1e-10, "disjoint boxes should have IoU 0")
}

func TestIoU_PartialOverlap(t *testing.T) {
	// Area1 = 100, Area2 = 100, Intersection = 50, Union = 150, IoU = 1/3
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 0, W: 10, H: 10}
	testutil.AssertAlmostEqual(t, IoU(a, b), 1.0/3.0, 1e-10, "50%-overlap boxes")
}

func TestIoU_ZeroAreaUnion(t *testing.T) {
	// Degenerate rectangles should never reach here in practice (w,h>0 is enforced
	// upstream), but IoU must not divide by zero if ever called with one.
	a := Rect{X: 0, Y: 0, W: 0, H: 0}
	b := Rect{X: 0, Y: 0, W: 0, H: 0}
	testutil.AssertAlmostEqual(t, IoU(a, b), 0.0, 1e-10, "zero-area union must not panic or divide by zero")
}

func TestCenterDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10} // centre (5, 5)
	b := Rect{X: 10, Y: 0, W: 10, H: 10} // centre (15, 5)
	testutil.AssertAlmostEqual(t, CenterDistance(a, b), 10.0, 1e-10, "centres 10 apart on the x-axis")
}

func TestCenterDistance_SameCenter(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}
	b := Rect{X: 1, Y: 1, W: 2, H: 2} // same centre, different size
	testutil.AssertAlmostEqual(t, CenterDistance(a, b), 0.0, 1e-10, "concentric rectangles have zero centre distance")
}
