// Package geom provides the rectangle geometry used to score candidate
// detection-to-track associations: centre distance and intersection-over-union.
//
// Ported in spirit from the teacher's internal/motmetrics IoU computation,
// adapted from a [x_min,y_min,x_max,y_max] corner representation to the
// top-left + width/height representation the tracking engine uses.
package geom

import "math"

// Rect is an axis-aligned rectangle in normalized image coordinates:
// (X, Y) is the top-left corner, W and H are strictly positive.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's centre point.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Area returns W*H.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// CenterDistance returns the Euclidean distance between the centres of a and b.
func CenterDistance(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// IoU returns the intersection-over-union of a and b, 0 when their union is zero.
func IoU(a, b Rect) float64 {
	xMinInter := math.Max(a.X, b.X)
	yMinInter := math.Max(a.Y, b.Y)
	xMaxInter := math.Min(a.X+a.W, b.X+b.W)
	yMaxInter := math.Min(a.Y+a.H, b.Y+b.H)

	var intersection float64
	if xMaxInter > xMinInter && yMaxInter > yMinInter {
		intersection = (xMaxInter - xMinInter) * (yMaxInter - yMinInter)
	}

	union := a.Area() + b.Area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}
