package fpsample

import "math"

// Interval is a closed [Low, High] axis bound, one per dimension of a
// node's bounding box.
type Interval struct {
	Low, High float32
}

// BBox is an axis-aligned bounding box: one Interval per active
// dimension, indexed [0:dim). Entries beyond dim are unused.
type BBox [MaxDim]Interval

// computeBBox scans points[left:right] and returns the tight bounding
// box over the first dim coordinates. Recomputed fresh for every node
// at build time rather than inherited from the parent, since a lopsided
// partition would otherwise leave a slack box that weakens pruning.
func computeBBox(points []Point, left, right, dim int) BBox {
	var box BBox
	for d := 0; d < dim; d++ {
		box[d].Low = float32(math.Inf(1))
		box[d].High = float32(math.Inf(-1))
	}
	for i := left; i < right; i++ {
		for d := 0; d < dim; d++ {
			v := points[i].Pos[d]
			if v < box[d].Low {
				box[d].Low = v
			}
			if v > box[d].High {
				box[d].High = v
			}
		}
	}
	return box
}

// boundDistance returns the squared Euclidean distance from ref to the
// box: zero if ref is inside the box, otherwise the sum over dimensions
// of the squared excess past the nearer face.
func (b *BBox) boundDistance(ref *Point, dim int) float32 {
	var sum float32
	for d := 0; d < dim; d++ {
		var excess float32
		if ref.Pos[d] > b[d].High {
			excess = ref.Pos[d] - b[d].High
		} else if ref.Pos[d] < b[d].Low {
			excess = b[d].Low - ref.Pos[d]
		}
		sum += excess * excess
	}
	return sum
}
