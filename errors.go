package fpsample

import (
	"errors"
	"fmt"
)

// StatusCode translates an error returned by one of this package's
// sampling functions into the source library's C-ABI status codes:
// 0 success, 1 dimension out of range, 2 start index out of range. Any
// other validation failure (shape, M) maps to a generic positive code
// of 3. nil maps to 0. This exists only for callers that must bridge
// to the original status-code contract (spec §6); idiomatic Go callers
// should just check err.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDimRange):
		return 1
	case errors.Is(err, errStartRange):
		return 2
	default:
		return 3
	}
}

var (
	errDimRange    = errors.New("fpsample: dimension out of range")
	errStartRange  = errors.New("fpsample: start index out of range")
	errHeightRange = errors.New("fpsample: height must be >= 1")
)

// validateSampleArgs checks the universal preconditions shared by every
// public entry point (spec §6, §7): all errors are detected before any
// tree work begins, so either the call runs to deterministic completion
// or it returns here with out_indices untouched.
func validateSampleArgs(n, d, m, startIdx int) error {
	if n <= 0 {
		return fmt.Errorf("fpsample: n must be positive, got %d", n)
	}
	if d <= 0 {
		return fmt.Errorf("fpsample: d must be positive, got %d", d)
	}
	if d > MaxDim {
		return fmt.Errorf("%w: d=%d exceeds MaxDim=%d", errDimRange, d, MaxDim)
	}
	if m < 0 {
		return fmt.Errorf("fpsample: m must be >= 0, got %d", m)
	}
	if m > n {
		return fmt.Errorf("fpsample: m must be <= n, got m=%d n=%d", m, n)
	}
	if startIdx < 0 || startIdx >= n {
		return fmt.Errorf("%w: start_idx=%d, n=%d", errStartRange, startIdx, n)
	}
	return nil
}

// validateDataLen checks that data holds exactly n*d elements, the
// shape precondition common to every entry point.
func validateDataLen(data []float32, n, d int) error {
	if len(data) != n*d {
		return fmt.Errorf("fpsample: data length %d does not match n*d = %d (n=%d, d=%d)", len(data), n*d, n, d)
	}
	return nil
}
