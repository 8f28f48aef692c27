package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quickfps/fpsample"
)

// Report summarizes one sampling run: the variant used, how long the
// selection is, and statistics over the per-step minimum-distance
// trace (the distance from each newly chosen point to the nearest
// point chosen before it — the quantity FPS is greedily maximizing).
type Report struct {
	Variant  fpsample.Variant
	Selected int
	Mean     float64
	StdDev   float64
	Min      float64
	Max      float64
}

// minDistTrace recomputes, for an already-produced selection order,
// the squared distance from each selected point (after the first) to
// the nearest point selected before it. This is an O(M^2) diagnostic
// pass over the final selection, independent of whichever variant
// produced it, used purely for reporting.
func minDistTrace(data []float32, d int, selection []int) []float64 {
	if len(selection) < 2 {
		return nil
	}
	trace := make([]float64, 0, len(selection)-1)
	for i := 1; i < len(selection); i++ {
		cur := data[selection[i]*d : selection[i]*d+d]
		best := float32(-1)
		for j := 0; j < i; j++ {
			prev := data[selection[j]*d : selection[j]*d+d]
			var sum float32
			for k := 0; k < d; k++ {
				diff := cur[k] - prev[k]
				sum += diff * diff
			}
			if best < 0 || sum < best {
				best = sum
			}
		}
		trace = append(trace, float64(best))
	}
	return trace
}

// buildReport runs stat.MeanStdDev and floats.Min/Max over the trace,
// matching the teacher package's preference for small focused helper
// functions over one monolithic stats blob.
func buildReport(variant fpsample.Variant, data []float32, d int, selection []int) Report {
	trace := minDistTrace(data, d, selection)
	rep := Report{Variant: variant, Selected: len(selection)}
	if len(trace) == 0 {
		return rep
	}
	rep.Mean, rep.StdDev = stat.MeanStdDev(trace, nil)
	rep.Min = floats.Min(trace)
	rep.Max = floats.Max(trace)
	return rep
}
