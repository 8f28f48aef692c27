package fpsample

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNaiveFPSConcreteSeedTriangle(t *testing.T) {
	data := []float32{0, 0, 10, 0, 5, 5}
	got, err := NaiveFPS(data, 3, 2, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNaiveFPSCollinearLine5(t *testing.T) {
	data := []float32{0, 1, 2, 3, 4}
	got, err := NaiveFPS(data, 5, 1, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 4, 2}
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNaiveFPSMZero(t *testing.T) {
	got, err := NaiveFPS([]float32{0, 1, 2}, 3, 1, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestNaiveFPSAgreesWithBucketTreeOnGreedyMax(t *testing.T) {
	data := randomPoints(200, 3, 7)
	naive, err := NaiveFPS(data, 200, 3, 20, 42)
	if err != nil {
		t.Fatalf("NaiveFPS error: %v", err)
	}
	tree, err := BucketFPSKDTree(data, 200, 3, 20, 42)
	if err != nil {
		t.Fatalf("BucketFPSKDTree error: %v", err)
	}
	if !satisfiesGreedyMax(data, 3, naive) {
		t.Fatal("NaiveFPS output fails greedy-max property")
	}
	if !satisfiesGreedyMax(data, 3, tree) {
		t.Fatal("BucketFPSKDTree output fails greedy-max property")
	}
}

func TestNPDUWindowCentersOnPrev(t *testing.T) {
	lo, hi := npduWindow(50, 1000, 10)
	if lo != 45 || hi != 55 {
		t.Fatalf("npduWindow(50, 1000, 10) = (%d, %d), want (45, 55)", lo, hi)
	}
}

func TestNPDUWindowClampsAtLowEdge(t *testing.T) {
	lo, hi := npduWindow(2, 1000, 10)
	if lo != 0 {
		t.Fatalf("lo = %d, want 0", lo)
	}
	if hi-lo != 10 {
		t.Fatalf("window width = %d, want 10 (shifted, not shrunk)", hi-lo)
	}
}

func TestNPDUWindowClampsAtHighEdge(t *testing.T) {
	lo, hi := npduWindow(997, 1000, 10)
	if hi != 999 {
		t.Fatalf("hi = %d, want 999", hi)
	}
	if hi-lo != 10 {
		t.Fatalf("window width = %d, want 10 (shifted, not shrunk)", hi-lo)
	}
}

func TestNPDUFPSRejectsBadWindow(t *testing.T) {
	_, err := NPDUFPS([]float32{0, 1}, 2, 1, 1, 0, 0)
	if !errors.Is(err, errWindowRange) {
		t.Fatalf("error = %v, want errWindowRange", err)
	}
}

func TestNPDUFPSBasicRange(t *testing.T) {
	data := randomPoints(50, 2, 3)
	got, err := NPDUFPS(data, 50, 2, 10, 0, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !distinctInRange(got, 10, 50) {
		t.Fatalf("got %v, not 10 distinct valid indices", got)
	}
}

func TestNPDUKDTreeFPSRejectsBadK(t *testing.T) {
	_, err := NPDUKDTreeFPS([]float32{0, 1}, 2, 1, 1, 0, 0)
	if !errors.Is(err, errKRange) {
		t.Fatalf("error = %v, want errKRange", err)
	}
}

func TestNPDUKDTreeFPSBasicRange(t *testing.T) {
	data := randomPoints(60, 2, 11)
	got, err := NPDUKDTreeFPS(data, 60, 2, 15, 0, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !distinctInRange(got, 15, 60) {
		t.Fatalf("got %v, not 15 distinct valid indices", got)
	}
	if got[0] != 0 {
		t.Fatalf("out[0] = %d, want 0", got[0])
	}
}

// randomPoints generates a deterministic n*d row-major buffer for
// tests that only need "some" data, not a specific geometry.
func randomPoints(n, d int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float32, n*d)
	for i := range data {
		data[i] = float32(rng.Float64() * 100)
	}
	return data
}
