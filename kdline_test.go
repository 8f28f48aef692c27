package fpsample

import "testing"

func TestKDLineTreeHeightOneIsTwoLeaves(t *testing.T) {
	points := mkPoints(0, 1, 2, 3)
	tree := newKDLineTree(points, 1, 1)

	if got := len(tree.leaves); got != 2 {
		t.Fatalf("leaf count at height 1 = %d, want 2", got)
	}
}

func TestKDLineTreeHeightStopsEarlyOnSinglePoint(t *testing.T) {
	// A single point can never be split further, regardless of height.
	points := mkPoints(7)
	tree := newKDLineTree(points, 1, 5)
	if got := len(tree.leaves); got != 1 {
		t.Fatalf("leaf count = %d, want 1", got)
	}
}

func TestKDLineTreeMaxPointAfterInit(t *testing.T) {
	points := mkPoints(0, 1, 2, 3)
	start := points[0]
	tree := newKDLineTree(points, 1, 1)
	tree.Init(start)

	max := tree.MaxPoint()
	if max.ID != 3 || max.Dis != 9 {
		t.Fatalf("MaxPoint = {ID:%d Dis:%v}, want {ID:3 Dis:9}", max.ID, max.Dis)
	}
}

func TestKDLineTreePushReferenceUpdatesAllLeaves(t *testing.T) {
	points := mkPoints(0, 1, 2, 3)
	start := points[0]
	tree := newKDLineTree(points, 1, 1)
	tree.Init(start)

	champ := tree.MaxPoint()
	tree.PushReference(champ)

	for _, leaf := range tree.leaves {
		if leaf.maxPoint.Dis > squaredDistanceToNearestOf(leaf, []Point{start, champ}) {
			t.Fatalf("leaf champion Dis %v exceeds true min-distance bound", leaf.maxPoint.Dis)
		}
	}
}

// squaredDistanceToNearestOf returns the maximum, over every point
// owned by leaf, of that point's minimum squared distance to refs — an
// upper bound the leaf's cached champion Dis must never exceed, since
// Dis is always a true minimum over applied references.
func squaredDistanceToNearestOf(leaf *Node, refs []Point) float32 {
	best := negInf
	for i := leaf.pointLeft; i < leaf.pointRight; i++ {
		p := leaf.points[i]
		minD := float32(1e30)
		for _, r := range refs {
			d := squaredDistance(&p, &r, leaf.dim)
			if d < minD {
				minD = d
			}
		}
		if minD > best {
			best = minD
		}
	}
	return best
}
