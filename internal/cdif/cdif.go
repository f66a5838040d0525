// Package cdif implements the Cumulative Difference Histogram PRI
// estimator: a rank-stepped histogram of inter-pulse differences with a
// subharmonic self-check, per radar_algorithm's CDIF.
package cdif

import (
	"github.com/kewuaa/radar-algorithm/internal/binning"
	"github.com/kewuaa/radar-algorithm/internal/obslog"
	"github.com/kewuaa/radar-algorithm/toa"
)

// Estimator is the CDIF PRI estimator. It holds only its threshold
// coefficient; it carries no state between Run calls and is safe to call
// concurrently from multiple goroutines.
type Estimator struct {
	k float64
}

// New constructs a CDIF estimator with threshold coefficient k, intended
// range (0, 1). Values outside that range are logged as a warning but do
// not prevent construction — CDIF's Run still proceeds with the value
// given.
func New(k float64) *Estimator {
	if k <= 0 || k >= 1 {
		obslog.Warnf("cdif: k should be between (0, 1), got %v", k)
	}
	return &Estimator{k: k}
}

// Run estimates a PRI from data using up to maxRank ranks of differences
// and bin width w. It returns false if data has fewer than 2 pulses or no
// bin satisfies the combined threshold/subharmonic test within maxRank
// ranks.
func (e *Estimator) Run(data toa.Sequence, maxRank int, w float64) (pri float64, ok bool) {
	if data.Len() < 2 {
		return 0, false
	}

	n := data.Len()
	duration := data.Duration()
	binNum := binning.Count(duration, w)

	hist := make([]float64, binNum)
	for i := range hist {
		center := binning.Center(i, 0, w)
		hist[i] = -e.k * duration / center
	}

	for rank := 1; rank <= maxRank; rank++ {
		for j := 0; j < n-rank; j++ {
			delta := data[j+rank] - data[j]
			idx := binning.Index(delta, 0, w)
			if idx >= 0 && idx < binNum {
				hist[idx]++
			}
		}

		for i := 0; i < binNum; i++ {
			if hist[i] <= 0 {
				continue
			}
			if subharmonicSupported(hist, i) {
				return binning.Center(i, 0, w), true
			}
		}
	}
	return 0, false
}

// subharmonicSupported reports whether bin i's candidate PRI is backed by
// activity in its subharmonic bins 2i or 2i+1 — the guard against locking
// onto a harmonic of the true PRI. Indices that fall outside the
// histogram are treated as unsupported, not as an error.
func subharmonicSupported(hist []float64, i int) bool {
	lo := 2 * i
	hi := 2*i + 1
	loOK := lo >= 0 && lo < len(hist) && hist[lo] > 0
	hiOK := hi >= 0 && hi < len(hist) && hist[hi] > 0
	return loOK || hiOK
}
