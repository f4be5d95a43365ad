// Package vis renders each frame's tracks as a PNG image: a fixed-size dark
// canvas with one green rectangle and integer id label per track, grounded
// on the teacher's drawing.Drawer (Rectangle/Text primitives) and
// color.Color (BGR) from drawing/drawer.go and color/color.go, trimmed down
// to the single green palette spec.md §6 calls for.
package vis

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"gocv.io/x/gocv"
)

// Canvas dimensions, per spec.md §6.
const (
	Width  = 800
	Height = 600
)

// background is the dark gray canvas fill behind the green boxes and
// labels.
var background = color.RGBA{R: 32, G: 32, B: 32, A: 255}

// boxColor is the single color used for every track's rectangle and label,
// trimmed from the teacher's tab10 id-based palette since spec.md calls
// for a single fixed color rather than per-id coloring.
var boxColor = color.RGBA{R: 0, G: 200, B: 0, A: 255}

// Track is the minimal per-track data vis needs to draw one frame.
type Track struct {
	ID         uint64
	X, Y, W, H float64
}

// FrameName returns the canonical frame_<iiii>.png file name for frame
// index i (zero-padded to four digits per spec.md §6).
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.png", i)
}

// WriteFrame renders tracks (in normalized [0,1] coordinates) onto a
// Width x Height canvas and writes it as a PNG to dir/frame_<iiii>.png.
func WriteFrame(dir string, i int, tracks []Track) error {
	canvas := gocv.NewMatWithSize(Height, Width, gocv.MatTypeCV8UC3)
	defer canvas.Close()
	canvas.SetTo(gocv.NewScalar(float64(background.B), float64(background.G), float64(background.R), 0))

	for _, t := range tracks {
		drawTrack(&canvas, t)
	}

	path := filepath.Join(dir, FrameName(i))
	if ok := gocv.IMWrite(path, canvas); !ok {
		return fmt.Errorf("vis: failed to write %s", path)
	}
	return nil
}

func drawTrack(canvas *gocv.Mat, t Track) {
	x0 := int(t.X * Width)
	y0 := int(t.Y * Height)
	x1 := int((t.X + t.W) * Width)
	y1 := int((t.Y + t.H) * Height)

	rect := image.Rectangle{Min: image.Point{X: x0, Y: y0}, Max: image.Point{X: x1, Y: y1}}
	gocv.Rectangle(canvas, rect, boxColor, 2)

	label := fmt.Sprintf("%d", t.ID)
	origin := image.Point{X: x0, Y: y0 - 4}
	if origin.Y < 10 {
		origin.Y = y0 + 14
	}
	gocv.PutTextWithParams(canvas, label, origin, gocv.FontHersheySimplex, 0.5, boxColor, 1, gocv.LineAA, false)
}
