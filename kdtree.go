package fpsample

// Tree is the interface the Sampler drives: read the current global
// farthest candidate and propagate a newly-selected point as a new
// reference through the tree.
type Tree interface {
	MaxPoint() Point
	PushReference(ref Point)
}

// KDTree is the recursive bucket-FPS variant: recursion only stops when
// a bucket holds a single point, and the global max is read straight
// off the cached root champion.
type KDTree struct {
	root   *Node
	points []Point
	dim    int
}

// recursiveShape implements treeShape for KDTree: leaves are single
// points; onLeaf is a no-op (there is no flat leaf list to register
// into, unlike KDLineTree).
type recursiveShape struct{}

func (recursiveShape) isLeaf(depth, count int) bool { return count == 1 }
func (recursiveShape) onLeaf(*Node)                 {}

// newKDTree builds the recursive variant's tree over points, which is
// reordered in place.
func newKDTree(points []Point, dim int) *KDTree {
	root := buildTree(points, dim, recursiveShape{})
	return &KDTree{root: root, points: points, dim: dim}
}

// Init seeds every point's distance to ref and establishes the MaxPoint
// invariant across the whole tree.
func (t *KDTree) Init(ref Point) {
	t.root.init(&ref)
}

// MaxPoint returns the point of currently-largest min-distance anywhere
// in the tree.
func (t *KDTree) MaxPoint() Point {
	return t.root.maxPoint
}

// PushReference enqueues ref at the root and re-establishes the
// MaxPoint invariant by running the pruning core (Node.updateDistance).
func (t *KDTree) PushReference(ref Point) {
	t.root.sendReference(ref)
	t.root.updateDistance()
}
