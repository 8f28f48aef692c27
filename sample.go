package fpsample

// buildPoints converts a row-major data buffer into a Point slice,
// tagging each with its original index. data is not modified; the
// returned slice is a fresh copy that the tree is free to reorder.
func buildPoints(data []float32, n, d int) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = newPoint(data, i*d, d, i)
	}
	return points
}

// runSample drives the generic FPS loop (spec §4.5) over any Tree:
// index 0 is always startIdx; for i = 1..m-1, read the current global
// champion, emit it, and propagate it through the tree as a new
// reference.
func runSample(tree Tree, m int, start Point) []int {
	out := make([]int, m)
	out[0] = start.ID
	for i := 1; i < m; i++ {
		ref := tree.MaxPoint()
		out[i] = ref.ID
		tree.PushReference(ref)
	}
	return out
}

// BucketFPSKDTree runs bucket-based FPS accelerated by a recursive
// KD-tree. data is row-major with n rows of d columns; m points are
// selected starting from startIdx. Returns the selected original
// indices in selection order, out[0] == startIdx.
func BucketFPSKDTree(data []float32, n, d, m, startIdx int) ([]int, error) {
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
	start := points[startIdx] // captured before build reorders points in place
	tree := newKDTree(points, d)
	tree.Init(start)

	return runSample(tree, m, start), nil
}

// BucketFPSKDLine runs bucket-based FPS accelerated by a fixed-height
// "KD-line" tree: subdivision stops at height H, and leaves are kept in
// a flat list scanned linearly at query time. height must be >= 1.
func BucketFPSKDLine(data []float32, n, d, m, startIdx, height int) ([]int, error) {
	if err := validateSampleArgs(n, d, m, startIdx); err != nil {
		return nil, err
	}
	if err := validateDataLen(data, n, d); err != nil {
		return nil, err
	}
	if height < 1 {
		return nil, errHeightRange
	}
	if m == 0 {
		return []int{}, nil
	}

	points := buildPoints(data, n, d)
	start := points[startIdx] // captured before build reorders points in place
	tree := newKDLineTree(points, d, height)
	tree.Init(start)

	return runSample(tree, m, start), nil
}
