package fpsample

// treeShape is the variant hook of spec §4.6: it decides where
// recursion stops (isLeaf) and what happens when it does (onLeaf). The
// recursive KD-tree and the KD-line variant each implement this
// differently; buildTree itself is shape-agnostic.
type treeShape interface {
	isLeaf(depth, count int) bool
	onLeaf(n *Node)
}

// buildTree partitions points[0:len(points)) in place and returns the
// root of a binary tree whose leaves jointly and disjointly cover the
// whole range. points is reordered; no point is copied.
func buildTree(points []Point, dim int, shape treeShape) *Node {
	if len(points) == 0 {
		return nil
	}
	return divideTree(points, 0, len(points), dim, 0, shape)
}

func divideTree(points []Point, left, right, dim, depth int, shape treeShape) *Node {
	box := computeBBox(points, left, right, dim)
	n := &Node{dim: dim, points: points, bbox: box}

	count := right - left
	if shape.isLeaf(depth, count) {
		n.pointLeft, n.pointRight = left, right
		shape.onLeaf(n)
		return n
	}

	splitDim := findSplitDim(&box, dim)
	splitVal := splitMean(points, left, right, splitDim)
	mid := left + planeSplit(points, left, right, splitDim, splitVal)

	n.left = divideTree(points, left, mid, dim, depth+1, shape)
	n.right = divideTree(points, mid, right, dim, depth+1, shape)
	return n
}

// findSplitDim returns the axis of maximum bbox span, the first axis
// whose span strictly exceeds the running maximum winning ties (i.e.
// the lowest-indexed axis of maximum span).
func findSplitDim(box *BBox, dim int) int {
	best := 0
	var bestSpan float32
	for d := 0; d < dim; d++ {
		span := box[d].High - box[d].Low
		if span > bestSpan {
			bestSpan = span
			best = d
		}
	}
	return best
}

// splitMean returns the arithmetic mean of points[left:right] along
// dim. This is an approximation of the true median — the source
// library names this function qSelectMedian despite computing the mean;
// we keep the computation but not the misleading name (spec §9 Open
// Question).
func splitMean(points []Point, left, right, dim int) float32 {
	var sum float32
	for i := left; i < right; i++ {
		sum += points[i].Pos[dim]
	}
	return sum / float32(right-left)
}

// planeSplit performs an in-place Hoare-style two-pointer partition of
// points[left:right) around splitVal on axis dim: every point with
// Pos[dim] < splitVal ends up to the left of the returned split offset
// (relative to left). If the natural partition would leave one side
// empty, it is corrected to a 1-vs-(count-1) split so recursion always
// makes progress.
func planeSplit(points []Point, left, right, dim int, splitVal float32) int {
	start, end := left, right-1

	for {
		for start <= end && points[start].Pos[dim] < splitVal {
			start++
		}
		for start <= end && points[end].Pos[dim] >= splitVal {
			end--
		}
		if start > end {
			break
		}
		points[start], points[end] = points[end], points[start]
		start++
		end--
	}

	lim := start - left
	if start == left {
		lim = 1
	}
	if start == right {
		lim = right - left - 1
	}
	return lim
}
