package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quickfps/fpsample"
)

var allVariants = []fpsample.Variant{
	fpsample.VariantBucketKDTree,
	fpsample.VariantBucketKDLine,
	fpsample.VariantNaive,
	fpsample.VariantNPDU,
	fpsample.VariantNPDUKDTree,
}

type flags struct {
	variant   string
	n, d, m   int
	startIdx  int
	height    int
	window    int
	k         int
	seed      int64
	csvPath   string
	logFormat string
	workers   int
	all       bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "fpsbench",
		Short: "Benchmark and compare farthest point sampling variants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.variant, "variant", string(fpsample.VariantBucketKDTree), "sampling variant to run")
	fl.BoolVar(&f.all, "all", false, "run every variant and report all of them")
	fl.IntVar(&f.n, "n", 1000, "number of points to generate (ignored with --csv)")
	fl.IntVar(&f.d, "d", 3, "point dimension")
	fl.IntVar(&f.m, "m", 100, "number of points to select")
	fl.IntVar(&f.startIdx, "start", 0, "start index")
	fl.IntVar(&f.height, "height", 4, "bucket_kdline leaf height")
	fl.IntVar(&f.window, "window", 0, "npdu window size (0 = auto)")
	fl.IntVar(&f.k, "k", 0, "npdu_kdtree neighbor count (0 = auto)")
	fl.Int64Var(&f.seed, "seed", 1, "PRNG seed for synthetic point generation")
	fl.StringVar(&f.csvPath, "csv", "", "load points from a headerless CSV file instead of generating them")
	fl.StringVar(&f.logFormat, "log-format", "console", "log format: console or json")
	fl.IntVar(&f.workers, "workers", 1, "max concurrent variant runs when --all is set")

	return cmd
}

func runBench(f *flags) error {
	logger, err := newLogger(f.logFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var data []float32
	n, d := f.n, f.d
	if f.csvPath != "" {
		data, n, err = loadCSV(f.csvPath, f.d)
		if err != nil {
			return err
		}
	} else {
		data = generateUniform(n, d, f.seed)
	}
	logger.Info("loaded point cloud", zap.Int("n", n), zap.Int("d", d), zap.Bool("csv", f.csvPath != ""))

	variants := []fpsample.Variant{fpsample.Variant(f.variant)}
	if f.all {
		variants = allVariants
	}

	reports, err := runVariants(data, n, d, f, variants, f.workers)
	if err != nil {
		return err
	}

	for _, rep := range reports {
		logger.Info("sample complete",
			zap.String("variant", string(rep.Variant)),
			zap.Int("selected", rep.Selected),
			zap.Float64("mean_min_dist", rep.Mean),
			zap.Float64("stddev_min_dist", rep.StdDev),
			zap.Float64("min_min_dist", rep.Min),
			zap.Float64("max_min_dist", rep.Max),
		)
	}
	return nil
}

// runVariants runs each requested variant, bounding concurrency to
// workers goroutines at a time, following the teacher's row-splitting
// worker-pool pattern generalized from splitting matrix rows to
// splitting independent variant runs.
func runVariants(data []float32, n, d int, f *flags, variants []fpsample.Variant, workers int) ([]Report, error) {
	if workers < 1 {
		workers = 1
	}

	reports := make([]Report, len(variants))
	errs := make([]error, len(variants))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v fpsample.Variant) {
			defer wg.Done()
			defer func() { <-sem }()

			selection, err := sampleVariant(data, n, d, f, v)
			if err != nil {
				errs[i] = fmt.Errorf("variant %s: %w", v, err)
				return
			}
			reports[i] = buildReport(v, data, d, selection)
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func sampleVariant(data []float32, n, d int, f *flags, variant fpsample.Variant) ([]int, error) {
	cfg := fpsample.SampleConfig{
		Variant:  variant,
		N:        n,
		D:        d,
		M:        f.m,
		StartIdx: f.startIdx,
		Height:   f.height,
		Window:   f.window,
		K:        f.k,
	}
	return fpsample.Sample(data, cfg)
}
