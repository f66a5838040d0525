// Package sdif implements the Second-order Difference Histogram PRI
// estimator: a per-rank rebuilt histogram with an exponential, bin-center
// dependent threshold, per radar_algorithm's SDIF.
package sdif

import (
	"math"

	"github.com/kewuaa/radar-algorithm/internal/binning"
	"github.com/kewuaa/radar-algorithm/internal/obslog"
	"github.com/kewuaa/radar-algorithm/toa"
)

// Estimator is the SDIF PRI estimator, immutable after construction and
// safe for concurrent use.
type Estimator struct {
	x, k float64
}

// New constructs an SDIF estimator with coefficients x and k, both
// intended to lie in (0, 1). Out-of-range values are logged as a warning
// but do not block construction.
func New(x, k float64) *Estimator {
	if x <= 0 || x >= 1 {
		obslog.Warnf("sdif: x should be between (0, 1), got %v", x)
	}
	if k <= 0 || k >= 1 {
		obslog.Warnf("sdif: k should be between (0, 1), got %v", k)
	}
	return &Estimator{x: x, k: k}
}

// Run estimates a PRI from data using up to maxRank ranks and bin width w.
// At rank 1, ambiguity (more than one candidate bin) defers to the next
// rank rather than returning a result; at rank > 1 the first candidate is
// accepted. Returns false if data has fewer than 2 pulses, or no rank
// yields an unambiguous candidate.
func (e *Estimator) Run(data toa.Sequence, maxRank int, w float64) (pri float64, ok bool) {
	if data.Len() < 2 {
		return 0, false
	}

	n := data.Len()
	duration := data.Duration()
	binNum := binning.Count(duration, w)

	for rank := 1; rank <= maxRank; rank++ {
		hist := make([]int, binNum)
		for j := 0; j < n-rank; j++ {
			delta := data[j+rank] - data[j]
			idx := binning.Index(delta, 0, w)
			if idx >= 0 && idx < binNum {
				hist[idx]++
			}
		}

		var candidates []float64
		for i := 0; i < binNum; i++ {
			center := binning.Center(i, 0, w)
			thr := e.x * float64(n-rank) * math.Exp(-center/(e.k*float64(binNum)))
			if float64(hist[i]) > thr {
				candidates = append(candidates, center)
			}
		}

		if len(candidates) == 0 {
			continue
		}
		if rank == 1 && len(candidates) > 1 {
			continue
		}
		return candidates[0], true
	}
	return 0, false
}
