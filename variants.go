package fpsample

import (
	"errors"
	"math"

	"github.com/quickfps/fpsample/internal/knn"
)

// NaiveFPS runs plain O(N*M) farthest point sampling: every step
// recomputes the distance from every remaining point to the
// most-recently selected point and scans for the new farthest point.
// This is the simplest possible correct implementation of the
// greedy-max property (spec §8 property 3) and is kept as a baseline
// for testing and benchmarking the accelerated variants against.
//
// Grounded on original_source/src/lib.rs's fps_sampling.
func NaiveFPS(data []float32, n, d, m, startIdx int) ([]int, error) {
	if err := validateSampleArgs(n, d, m, startIdx); err != nil {
		return nil, err
	}
	if err := validateDataLen(data, n, d); err != nil {
		return nil, err
	}
	if m == 0 {
		return []int{}, nil
	}

	points := buildPoints(data, n, d)
	minDist := make([]float32, n)
	for i := range minDist {
		minDist[i] = float32(math.Inf(1))
	}

	out := make([]int, m)
	prev := startIdx
	out[0] = points[startIdx].ID

	for step := 1; step < m; step++ {
		ref := &points[prev]
		maxIdx := 0
		maxDist := negInf
		for i := range points {
			dd := squaredDistance(&points[i], ref, d)
			if dd < minDist[i] {
				minDist[i] = dd
			}
			if minDist[i] > maxDist {
				maxDist = minDist[i]
				maxIdx = i
			}
		}
		out[step] = points[maxIdx].ID
		prev = maxIdx
	}

	return out, nil
}

// NPDUFPS runs "nearest-point distance update" FPS: instead of
// recomputing every point's distance on every step, only the points
// within a window of `window` indices (in the original, not tree,
// order) around the most recently selected point are updated. This is
// a heuristic, not an exact greedy-max algorithm — it trades accuracy
// for speed on point clouds where nearby indices correspond to nearby
// geometry (e.g. scan-ordered LiDAR sweeps).
//
// Grounded on original_source/src/lib.rs's fps_npdu_sampling.
func NPDUFPS(data []float32, n, d, m, startIdx, window int) ([]int, error) {
	if err := validateSampleArgs(n, d, m, startIdx); err != nil {
		return nil, err
	}
	if err := validateDataLen(data, n, d); err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, errWindowRange
	}
	if m == 0 {
		return []int{}, nil
	}

	points := buildPoints(data, n, d)
	minDist := make([]float32, n)
	for i := range minDist {
		minDist[i] = float32(math.Inf(1))
	}

	out := make([]int, m)
	out[0] = points[startIdx].ID

	// Seed every point's distance to the start point, matching the
	// source's first-round full scan.
	start := &points[startIdx]
	for i := range points {
		dd := squaredDistance(&points[i], start, d)
		if dd < minDist[i] {
			minDist[i] = dd
		}
	}

	prev := startIdx
	for step := 1; step < m; step++ {
		lo, hi := npduWindow(prev, n, window)
		ref := &points[prev]
		for i := lo; i <= hi; i++ {
			dd := squaredDistance(&points[i], ref, d)
			if dd < minDist[i] {
				minDist[i] = dd
			}
		}

		maxIdx := 0
		maxDist := negInf
		for i := 0; i < n; i++ {
			if minDist[i] > maxDist {
				maxDist = minDist[i]
				maxIdx = i
			}
		}
		out[step] = points[maxIdx].ID
		prev = maxIdx
	}

	return out, nil
}

// npduWindow returns the [lo, hi] index window of width `window`
// centered on prev, clamped to [0, n), shifting rather than shrinking
// when the natural window would run off either edge — matching the
// source library's window_range computation exactly.
func npduWindow(prev, n, window int) (lo, hi int) {
	half := window / 2
	lo = prev - half
	hi = prev + half
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi >= n {
		shift := hi - n + 1
		lo -= shift
		if lo < 0 {
			lo = 0
		}
		hi = n - 1
	}
	return lo, hi
}

var errWindowRange = errors.New("fpsample: window must be >= 1")

// NPDUKDTreeFPS runs the KD-tree-accelerated NPDU variant: instead of a
// fixed index window, each step queries the k nearest neighbors (by
// coordinate, via an ordinary nearest-neighbor KD-tree, not the bucket
// FPS core's pruning tree) of the most recently selected point and
// updates only their distances. Like NPDUFPS this is a heuristic
// approximation of greedy-max, not an exact one.
//
// Grounded on original_source/src/lib.rs's fps_npdu_kdtree_sampling,
// which builds a `kdtree::KdTree` and calls `.nearest(point, k, ...)`
// each step; internal/knn.Tree.Nearest plays the same role here.
func NPDUKDTreeFPS(data []float32, n, d, m, startIdx, k int) ([]int, error) {
	if err := validateSampleArgs(n, d, m, startIdx); err != nil {
		return nil, err
	}
	if err := validateDataLen(data, n, d); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, errKRange
	}
	if m == 0 {
		return []int{}, nil
	}

	points := buildPoints(data, n, d)
	knnPoints := make([]knn.Point, n)
	for i := range points {
		knnPoints[i] = knn.Point{Pos: append([]float32(nil), points[i].Pos[:d]...), ID: i}
	}
	tree := knn.Build(knnPoints, d)

	minDist := make([]float32, n)
	for i := range minDist {
		minDist[i] = float32(math.Inf(1))
	}

	out := make([]int, m)
	out[0] = points[startIdx].ID

	start := &points[startIdx]
	for i := range points {
		dd := squaredDistance(&points[i], start, d)
		if dd < minDist[i] {
			minDist[i] = dd
		}
	}

	prev := startIdx
	for step := 1; step < m; step++ {
		ids, dists := tree.Nearest(points[prev].Pos[:d], k)
		for j, id := range ids {
			if dists[j] < minDist[id] {
				minDist[id] = dists[j]
			}
		}

		maxIdx := 0
		maxDist := negInf
		for i := 0; i < n; i++ {
			if minDist[i] > maxDist {
				maxDist = minDist[i]
				maxIdx = i
			}
		}
		out[step] = points[maxIdx].ID
		prev = maxIdx
	}

	return out, nil
}

var errKRange = errors.New("fpsample: k must be >= 1")
