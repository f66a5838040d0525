// Package pulsecorrelation implements blind chain extraction: finding the
// subset of pulses belonging to a still-unknown PRI by pair-indexed
// histogram bins and a heap-ordered chain search, per radar_algorithm's
// PulseCorrelation.
package pulsecorrelation

import (
	"container/heap"

	"github.com/kewuaa/radar-algorithm/internal/extraction"
	"github.com/kewuaa/radar-algorithm/internal/obslog"
	"github.com/kewuaa/radar-algorithm/toa"
)

// maxLabels is the size of the recyclable label space (one bit per label
// in a 32-bit mask word).
const maxLabels = 32

// Estimator is the PulseCorrelation extractor, immutable after
// construction and safe for concurrent use.
type Estimator struct {
	minChain int
	thr      int
}

// New constructs a PulseCorrelation extractor. minChain is the minimum
// chain length (in pairs) worth searching; a result is returned only when
// its total pulse count exceeds thr. Both are expected to be >= 1;
// out-of-range values are logged as a warning but do not block
// construction.
func New(minChain, thr int) *Estimator {
	if minChain < 1 {
		obslog.Warnf("pulsecorrelation: minChain should be >= 1, got %d", minChain)
	}
	if thr < 1 {
		obslog.Warnf("pulsecorrelation: thr should be >= 1, got %d", thr)
	}
	return &Estimator{minChain: minChain, thr: thr}
}

// Run searches for a chain of pulses sharing a common, initially unknown
// inter-pulse spacing within candidate range [r0, r1], using bin width w
// and merging evidence across mergeNum adjacent bins. It returns the
// ascending (extracted, remaining) partition for the first bin whose
// committed chains together hold more than thr pulses, or false if data
// has fewer than thr pulses or no bin qualifies.
func (e *Estimator) Run(data toa.Sequence, r0, r1, w float64, mergeNum int) (extraction.Result, bool) {
	n := data.Len()
	if n < e.thr {
		return extraction.Result{}, false
	}

	hist := buildHistogram(data, r0, r1, w, mergeNum)

	h := binHeap(hist)
	heap.Init(&h)

	m := newMask(n)
	var label uint

	for h.Len() > 0 {
		top := h[0]
		if len(top.pairs) < e.minChain {
			break
		}

		size := searchChains(top, m, label, e.minChain)
		if size > e.thr {
			result := extraction.Partition(n, func(i int) bool {
				return m.has(i, label)
			})
			return result, true
		}

		label++
		if label == maxLabels {
			label = 0
			m.reset()
		}
		heap.Pop(&h)
	}
	return extraction.Result{}, false
}
