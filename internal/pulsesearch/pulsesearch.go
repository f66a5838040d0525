// Package pulsesearch implements extraction of a pulse chain at a known
// PRI, tolerating a bounded miss rate by re-syncing its search target on
// every accepted pulse, per radar_algorithm's PulseSearcher.
package pulsesearch

import (
	"math"

	"github.com/kewuaa/radar-algorithm/internal/extraction"
	"github.com/kewuaa/radar-algorithm/internal/obslog"
	"github.com/kewuaa/radar-algorithm/toa"
)

// Estimator is the PulseSearcher extractor, immutable after construction
// and safe for concurrent use.
type Estimator struct {
	thr           int
	toler         float64
	allowMissRate float64
}

// New constructs a PulseSearcher extractor. thr is the minimum chain
// length to accept; toler is the search tolerance around the expected
// target TOA; allowMissRate in [0, 1] bounds how much of a hypothesized
// chain may be missing pulses. Out-of-range toler/allowMissRate are
// logged as a warning but do not block construction.
func New(thr int, toler, allowMissRate float64) *Estimator {
	if allowMissRate < 0 || allowMissRate > 1 {
		obslog.Warnf("pulsesearch: allowMissRate should be between [0, 1], got %v", allowMissRate)
	}
	if toler < 0 {
		obslog.Warnf("pulsesearch: toler must be non-negative, got %v", toler)
	}
	return &Estimator{thr: thr, toler: toler, allowMissRate: allowMissRate}
}

// Run searches data for a chain of pulses spaced by pri, within
// tolerance toler and allowing up to allowMissRate of the hypothesized
// pulse count to be missing. Returns the ascending (extracted, remaining)
// partition, or false if no chain of length >= thr was found.
func (e *Estimator) Run(pri float64, data toa.Sequence) (extraction.Result, bool) {
	n := data.Len()
	if n < e.thr {
		return extraction.Result{}, false
	}

	taken := make([]bool, n)
	endTOA := data.Last()
	pulseCount := 0
	var cache []int

	for startIdx := 0; startIdx < n; startIdx++ {
		if taken[startIdx] {
			continue
		}

		start := data[startIdx]
		maxNum := (endTOA - start) / pri
		allowMissNum := math.Round(maxNum * e.allowMissRate)

		if maxNum < float64(e.thr) || n-pulseCount < e.thr {
			break
		}

		cache = cache[:0]
		cache = append(cache, startIdx)

		target := start + pri
		idx := startIdx + 1
		missNum := 0.0

		for idx < n && target < endTOA+e.toler {
			if taken[idx] {
				idx++
				continue
			}

			toaVal := data[idx]

			if toaVal > target+e.toler {
				target += pri
				missNum++
				if missNum > allowMissNum {
					break
				}
				continue
			}

			if toaVal > target-e.toler {
				target = toaVal + pri
				cache = append(cache, idx)
			}

			idx++
		}

		if len(cache) >= e.thr {
			for _, i := range cache {
				taken[i] = true
			}
			pulseCount += len(cache)
		}
	}

	if pulseCount == 0 {
		return extraction.Result{}, false
	}

	result := extraction.Partition(n, func(i int) bool {
		return taken[i]
	})
	return result, true
}
