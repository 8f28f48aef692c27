// Package knn implements a small standalone nearest-neighbor KD-tree,
// used only by the NPDUKDTreeFPS external collaborator. It
// deliberately shares no code with the bucket FPS core: it has no
// waitpoints/delaypoints pruning cache and no max_point invariant,
// just a classic median-split tree with bounded recursive KNN search.
//
// Grounded on the median-split-and-recurse shape of
// other_examples/mlnoga-nightlight__kdtree2.go, generalized from fixed
// k=2 to an arbitrary dimension, and on the bounded max-heap query
// style of TrevorS/hdbscan's KDTree.QueryKNN (kept in that package's
// kdtree.go, not reused directly since this tree's node layout
// differs).
package knn

import (
	"container/heap"
	"math"
	"sort"
)

// Point is a single indexed coordinate in the tree.
type Point struct {
	Pos []float32
	ID  int
}

type node struct {
	idx         int // index into the shared points slice this node pivots on
	splitAxis   int
	splitVal    float32
	left, right *node
}

// Tree is a read-only nearest-neighbor index over a fixed point set.
type Tree struct {
	points []Point
	dim    int
	root   *node
}

// Build constructs a KD-tree over points (not mutated; the tree holds
// its own index permutation internally via node.idx pointers into a
// working copy).
func Build(points []Point, dim int) *Tree {
	work := make([]Point, len(points))
	copy(work, points)
	t := &Tree{points: work, dim: dim}
	idxs := make([]int, len(work))
	for i := range idxs {
		idxs[i] = i
	}
	t.root = t.build(idxs)
	return t
}

func (t *Tree) build(idxs []int) *node {
	if len(idxs) == 0 {
		return nil
	}
	axis := t.maxSpreadAxis(idxs)
	sort.Slice(idxs, func(i, j int) bool {
		return t.points[idxs[i]].Pos[axis] < t.points[idxs[j]].Pos[axis]
	})
	mid := len(idxs) / 2
	n := &node{idx: idxs[mid], splitAxis: axis, splitVal: t.points[idxs[mid]].Pos[axis]}
	n.left = t.build(idxs[:mid])
	n.right = t.build(idxs[mid+1:])
	return n
}

func (t *Tree) maxSpreadAxis(idxs []int) int {
	best := 0
	var bestSpread float32
	for d := 0; d < t.dim; d++ {
		lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
		for _, i := range idxs {
			v := t.points[i].Pos[d]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if hi-lo > bestSpread {
			bestSpread = hi - lo
			best = d
		}
	}
	return best
}

func sqDist(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

type neighbor struct {
	id   int
	dist float32
}

// maxHeap is a bounded max-heap keyed on distance (largest on top), so
// the single worst kept neighbor is always O(1) to find and evict.
type maxHeap []neighbor

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Nearest returns the k nearest neighbors to query (excluding nothing;
// if query coincides with a stored point, that point is eligible), as
// parallel slices of original indices and squared distances, both
// sorted by ascending distance. If the tree holds fewer than k points,
// all of them are returned.
func (t *Tree) Nearest(query []float32, k int) (ids []int, dists []float32) {
	h := &maxHeap{}
	heap.Init(h)
	t.search(t.root, query, k, h)

	n := h.Len()
	ids = make([]int, n)
	dists = make([]float32, n)
	for i := n - 1; i >= 0; i-- {
		item := heap.Pop(h).(neighbor)
		ids[i] = item.id
		dists[i] = item.dist
	}
	return ids, dists
}

func (t *Tree) search(n *node, query []float32, k int, h *maxHeap) {
	if n == nil {
		return
	}

	pt := t.points[n.idx]
	d := sqDist(query, pt.Pos)
	if h.Len() < k {
		heap.Push(h, neighbor{id: pt.ID, dist: d})
	} else if d < (*h)[0].dist {
		(*h)[0] = neighbor{id: pt.ID, dist: d}
		heap.Fix(h, 0)
	}

	diff := query[n.splitAxis] - n.splitVal
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}

	t.search(near, query, k, h)
	if h.Len() < k || diff*diff < (*h)[0].dist {
		t.search(far, query, k, h)
	}
}
