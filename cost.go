package tracker

import "github.com/bboxtrack/tracker/internal/geom"

// bigCost is the cost assigned to disallowed (gated-out) pairs; dummy
// padding cells cost 0 (see buildCostMatrix). It must dominate any
// achievable allowed cost so the assignment solver never prefers a
// gated-out pair over a real, allowed one (spec.md §9, "per-step cost
// padding constant").
const bigCost = 1e9

// minIoUGate is the minimum IoU below which a pair is disallowed regardless
// of centre distance (spec.md §4.3 gating).
const minIoUGate = 0.01

// pairCost computes the gated association cost between a track's predicted
// rectangle and a detection, per spec.md §4.3. alpha trades off shape/
// overlap (IoU) against positional closeness (centre distance); maxDist is
// the centre-distance gate.
func pairCost(track, det geom.Rect, alpha, maxDist float64) float64 {
	ccd := geom.CenterDistance(track, det)
	iou := geom.IoU(track, det)
	if ccd > maxDist || iou < minIoUGate {
		return bigCost
	}
	return alpha*(1-iou) + (1-alpha)*ccd
}

// buildCostMatrix constructs the N=max(nTracks,nDets) square cost matrix
// per spec.md §4.4 step 2: real (track, detection) cells carry the gated
// pairCost; rows/columns past the real dimensions (dummy rows for surplus
// detections, dummy columns for surplus tracks) are padded with cost 0 so
// the solver freely absorbs the surplus side.
func buildCostMatrix(tracks []*Track, dets []Detection, alpha, maxDist float64) [][]float64 {
	n := len(tracks)
	if len(dets) > n {
		n = len(dets)
	}
	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			switch {
			case i < len(tracks) && j < len(dets):
				cost[i][j] = pairCost(tracks[i].Rect, dets[j].rect(), alpha, maxDist)
			default:
				cost[i][j] = 0
			}
		}
	}
	return cost
}
