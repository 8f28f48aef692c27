package fpsample

import "math"

// Node is a KD-tree node: either internal (left and right set, bucket
// range unused) or a leaf bucket owning a contiguous slice
// points[pointLeft:pointRight) of the tree's shared point array.
//
// maxPoint caches the point of largest Dis anywhere in this subtree; it
// is a value copy, not a reference into the point array, so a node's
// cached view survives independent mutation of the underlying point's
// Dis by a sibling's update. waitPoints and delayPoints are per-node
// FIFO queues of reference points pending application (see
// updateDistance).
type Node struct {
	dim int // active dimensionality, copied from the owning tree

	points                []Point // shared, non-owning slice into the tree's point array
	pointLeft, pointRight int
	idx                   int // leaf index, assigned by onLeaf hooks; unused by internal nodes

	bbox     BBox
	maxPoint Point

	waitPoints  []Point
	delayPoints []Point

	left, right *Node
}

// negInf seeds max-distance scans so the first candidate always wins.
var negInf = float32(math.Inf(-1))

// isLeaf reports whether n is a bucket leaf rather than an internal node.
func (n *Node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// init seeds every point in the subtree with its distance to ref and
// establishes the MaxPoint invariant (P1): MaxPoint.Dis ==
// max over the subtree of Dis. Clears WaitPoints/DelayPoints.
func (n *Node) init(ref *Point) {
	n.waitPoints = n.waitPoints[:0]
	n.delayPoints = n.delayPoints[:0]

	if !n.isLeaf() {
		n.left.init(ref)
		n.right.init(ref)
		n.updateMaxPoint(n.left.maxPoint, n.right.maxPoint)
		return
	}

	n.scanBucketInit(ref)
}

// scanBucketInit is the leaf half of init: scan the bucket, update every
// point's distance to ref, and track the bucket's farthest point.
func (n *Node) scanBucketInit(ref *Point) {
	maxDis := negInf
	for i := n.pointLeft; i < n.pointRight; i++ {
		dis := n.points[i].updateDistance(ref, n.dim)
		if dis > maxDis {
			maxDis = dis
			n.maxPoint = n.points[i]
		}
	}
}

// updateMaxPoint sets n.maxPoint to whichever of lpoint/rpoint has the
// larger Dis, with the left child winning ties — this tie policy is
// observable (spec §4.4, §8 property 5) and must not be changed to
// match a particular reference output.
func (n *Node) updateMaxPoint(lpoint, rpoint Point) {
	if rpoint.Dis > lpoint.Dis {
		n.maxPoint = rpoint
	} else {
		n.maxPoint = lpoint
	}
}

// sendReference enqueues ref onto n's wait queue. The reference is not
// applied until updateDistance drains the queue.
func (n *Node) sendReference(ref Point) {
	n.waitPoints = append(n.waitPoints, ref)
}

// updateDistance is the pruning core of the algorithm (spec §4.4). It
// drains n.waitPoints in FIFO order; for each ref:
//
//   - Case A (ref cannot improve n's current champion: C > M, where M is
//     n.maxPoint.Dis and C is the squared distance from the cached
//     champion to ref): ref might still tighten some other point in the
//     subtree. If the bounding-box lower bound B is >= M, ref cannot
//     improve anything in this subtree either and is discarded;
//     otherwise it is deferred onto delayPoints until a future
//     champion change forces a descent.
//   - Case B (C <= M): ref can improve the champion. Internal nodes
//     first drain delayPoints into both children (the postponed refs
//     must be admitted before the champion is recomputed), then push
//     ref to both children and recurse. Leaves push ref onto
//     delayPoints and rescan the bucket against every queued delay
//     point, recomputing the bucket's champion from scratch.
//
// Comparisons are strict (`>`/`<`): C == M falls into Case B and
// descends, and B == M discards ref rather than deferring it.
func (n *Node) updateDistance() {
	for _, ref := range n.waitPoints {
		lastMax := n.maxPoint.Dis
		cur := squaredDistance(&n.maxPoint, &ref, n.dim)

		if cur > lastMax {
			bound := n.bbox.boundDistance(&ref, n.dim)
			if bound < lastMax {
				n.delayPoints = append(n.delayPoints, ref)
			}
			continue
		}

		if n.isLeaf() {
			n.applyDelayedLeaf(ref)
			continue
		}

		n.descend(ref)
	}
	n.waitPoints = n.waitPoints[:0]
}

// descend is the internal-node branch of Case B: admit any postponed
// delay points into both children, push ref into both children, recurse,
// and refresh the cached champion from the children's champions.
func (n *Node) descend(ref Point) {
	if len(n.delayPoints) > 0 {
		for _, d := range n.delayPoints {
			n.left.sendReference(d)
			n.right.sendReference(d)
		}
		n.delayPoints = n.delayPoints[:0]
	}

	n.left.sendReference(ref)
	n.left.updateDistance()

	n.right.sendReference(ref)
	n.right.updateDistance()

	n.updateMaxPoint(n.left.maxPoint, n.right.maxPoint)
}

// applyDelayedLeaf is the leaf branch of Case B: push ref onto
// delayPoints, then rescan the bucket against every delay point in turn,
// recomputing the bucket champion as we go.
func (n *Node) applyDelayedLeaf(ref Point) {
	n.delayPoints = append(n.delayPoints, ref)
	for _, delay := range n.delayPoints {
		maxDis := negInf
		for i := n.pointLeft; i < n.pointRight; i++ {
			dis := n.points[i].updateDistance(&delay, n.dim)
			if dis > maxDis {
				maxDis = dis
				n.maxPoint = n.points[i]
			}
		}
	}
	n.delayPoints = n.delayPoints[:0]
}

// size returns the number of points in this subtree.
func (n *Node) size() int {
	if n.isLeaf() {
		return n.pointRight - n.pointLeft
	}
	return n.left.size() + n.right.size()
}

