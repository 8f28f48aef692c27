package fpsample

import "fmt"

// Variant selects which sampling algorithm SampleConfig.Sample runs.
type Variant string

const (
	// VariantBucketKDTree is the recursive bucket-FPS KD-tree (spec §4).
	VariantBucketKDTree Variant = "bucket_kdtree"
	// VariantBucketKDLine is the fixed-height bucket-FPS KD-line tree.
	VariantBucketKDLine Variant = "bucket_kdline"
	// VariantNaive is the O(N*M) brute-force baseline.
	VariantNaive Variant = "naive"
	// VariantNPDU is the local-window nearest-point-distance-update baseline.
	VariantNPDU Variant = "npdu"
	// VariantNPDUKDTree is the KD-tree-accelerated NPDU baseline.
	VariantNPDUKDTree Variant = "npdu_kdtree"
)

// SampleConfig gathers the arguments needed to run any of this
// package's sampling variants behind a single dispatch point. Start
// with DefaultSampleConfig and override the fields you need, following
// the teacher package's Config/DefaultConfig/Cluster idiom.
type SampleConfig struct {
	// Variant selects the algorithm. Default: VariantBucketKDTree.
	Variant Variant

	// N, D, M, StartIdx are the universal sampling arguments (spec §6).
	N, D, M, StartIdx int

	// Height is required when Variant == VariantBucketKDLine; ignored
	// otherwise.
	Height int

	// Window is used when Variant == VariantNPDU. Zero defaults to the
	// original wrapper's heuristic: N/M*16.
	Window int

	// K is used when Variant == VariantNPDUKDTree. Zero defaults to the
	// same N/M*16 heuristic as Window.
	K int
}

// DefaultSampleConfig returns a SampleConfig defaulted to the
// recursive bucket KD-tree variant. N/D/M/StartIdx must still be set.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{Variant: VariantBucketKDTree}
}

// defaultNPDUParam mirrors the original Python wrapper's default window
// size: int(n_pts / n_samples * 16).
func defaultNPDUParam(n, m int) int {
	if m == 0 {
		return 16
	}
	return int(float64(n) / float64(m) * 16)
}

func applySampleDefaults(cfg *SampleConfig) {
	if cfg.Variant == "" {
		cfg.Variant = VariantBucketKDTree
	}
	if cfg.Variant == VariantNPDU && cfg.Window == 0 {
		cfg.Window = defaultNPDUParam(cfg.N, cfg.M)
	}
	if cfg.Variant == VariantNPDUKDTree && cfg.K == 0 {
		cfg.K = defaultNPDUParam(cfg.N, cfg.M)
	}
}

// Sample runs data through whichever variant cfg.Variant selects,
// after filling in zero-valued defaults. It is a thin dispatcher over
// the package's standalone entry points (BucketFPSKDTree, NaiveFPS,
// ...); those remain the recommended API for callers who already know
// which variant they want.
func Sample(data []float32, cfg SampleConfig) ([]int, error) {
	applySampleDefaults(&cfg)

	switch cfg.Variant {
	case VariantBucketKDTree:
		return BucketFPSKDTree(data, cfg.N, cfg.D, cfg.M, cfg.StartIdx)
	case VariantBucketKDLine:
		return BucketFPSKDLine(data, cfg.N, cfg.D, cfg.M, cfg.StartIdx, cfg.Height)
	case VariantNaive:
		return NaiveFPS(data, cfg.N, cfg.D, cfg.M, cfg.StartIdx)
	case VariantNPDU:
		return NPDUFPS(data, cfg.N, cfg.D, cfg.M, cfg.StartIdx, cfg.Window)
	case VariantNPDUKDTree:
		return NPDUKDTreeFPS(data, cfg.N, cfg.D, cfg.M, cfg.StartIdx, cfg.K)
	default:
		return nil, fmt.Errorf("fpsample: unknown variant %q", cfg.Variant)
	}
}
