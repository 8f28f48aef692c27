package fpsample

import (
	"errors"
	"testing"
)

func TestValidateSampleArgsAccepts(t *testing.T) {
	if err := validateSampleArgs(10, 3, 5, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateSampleArgsMZeroIsValid(t *testing.T) {
	if err := validateSampleArgs(10, 3, 0, 0); err != nil {
		t.Fatalf("m=0 must be accepted, got: %v", err)
	}
}

func TestValidateSampleArgsRejects(t *testing.T) {
	cases := []struct {
		name              string
		n, d, m, startIdx int
		wantSentinel      error
	}{
		{"n non-positive", 0, 1, 0, 0, nil},
		{"d non-positive", 5, 0, 1, 0, nil},
		{"d exceeds MaxDim", 5, MaxDim + 1, 1, 0, errDimRange},
		{"m negative", 5, 1, -1, 0, nil},
		{"m exceeds n", 5, 1, 6, 0, nil},
		{"start negative", 5, 1, 1, -1, errStartRange},
		{"start >= n", 5, 1, 1, 5, errStartRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateSampleArgs(c.n, c.d, c.m, c.startIdx)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if c.wantSentinel != nil && !errors.Is(err, c.wantSentinel) {
				t.Fatalf("error = %v, want wrapping %v", err, c.wantSentinel)
			}
		})
	}
}

func TestValidateDataLen(t *testing.T) {
	if err := validateDataLen(make([]float32, 6), 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateDataLen(make([]float32, 5), 2, 3); err == nil {
		t.Fatal("expected error for mismatched data length")
	}
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"dim range", errDimRange, 1},
		{"start range", errStartRange, 2},
		{"other", errHeightRange, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StatusCode(c.err); got != c.want {
				t.Fatalf("StatusCode(%v) = %d, want %d", c.err, got, c.want)
			}
		})
	}
}
