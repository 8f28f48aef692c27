// Package fpsample implements bucket-based KD-tree accelerated Farthest
// Point Sampling (FPS) for low-dimensional point clouds.
//
// Given N points in D-dimensional Euclidean space, FPS incrementally
// selects M <= N indices such that each newly chosen point maximizes its
// minimum distance to all previously chosen points. The package provides
// two accelerated variants built on a shared pruning KD-tree, plus three
// simpler baseline variants for comparison.
//
// Basic usage:
//
//	idx, err := fpsample.BucketFPSKDTree(data, n, d, 256, 0)
//	// idx[i] is the original index of the i-th selected point
//	// idx[0] == 0 (the start index)
//
// For very low dimensions where a fixed-height tree with a flat leaf
// scan pays off better than full recursion:
//
//	idx, err := fpsample.BucketFPSKDLine(data, n, d, 256, 0, height)
//
// # Variant selection
//
// BucketFPSKDTree and BucketFPSKDLine are the accelerated core of this
// package: both maintain a per-node cached "farthest candidate" and
// prune reference updates using bounding-box lower bounds. NaiveFPS,
// NPDUFPS, and NPDUKDTreeFPS are simpler baselines kept for comparison
// and testing; none of them share state with the bucket FPS core.
package fpsample
