package pulsecorrelation

import (
	"container/heap"

	"github.com/kewuaa/radar-algorithm/internal/binning"
	"github.com/kewuaa/radar-algorithm/toa"
)

// pulsePair is one (head, tail) candidate pulse pair, head < tail into the
// TOA sequence.
type pulsePair struct {
	head, tail int
}

// bin holds the pair-list for one histogram bin, built in (head
// ascending, then tail ascending) insertion order.
type bin struct {
	idx   int // original histogram index, kept for stable identification
	pairs []pulsePair
}

// buildHistogram deposits every in-range (head, tail) pair into bin
// idx and, to smear evidence across nearby candidate PRIs, into the bins
// below it: min(idx, mergeNum) bins in all, from idx downward. A pair
// whose index is 0 is therefore not deposited in any bin.
func buildHistogram(data toa.Sequence, r0, r1, w float64, mergeNum int) []bin {
	n := data.Len()
	duration := data.Duration()
	binNum := binning.Count(duration, w)

	hist := make([]bin, binNum)
	for i := range hist {
		hist[i].idx = i
	}

	for head := 0; head < n-1; head++ {
		for tail := head + 1; tail < n; tail++ {
			delta := data[tail] - data[head]
			if delta < r0 {
				continue
			}
			if delta > r1 {
				break
			}
			idx := binning.Index(delta, r0, w)
			if idx < 0 || idx >= binNum {
				continue
			}
			maxOffset := mergeNum
			if idx < maxOffset {
				maxOffset = idx
			}
			for offset := 0; offset < maxOffset; offset++ {
				hist[idx-offset].pairs = append(hist[idx-offset].pairs, pulsePair{head, tail})
			}
		}
	}
	return hist
}

// binHeap is a max-heap of bins ordered by pair-list length, used to visit
// the most evidence-rich candidate PRI first.
type binHeap []bin

func (h binHeap) Len() int            { return len(h) }
func (h binHeap) Less(i, j int) bool  { return len(h[i].pairs) > len(h[j].pairs) }
func (h binHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *binHeap) Push(x interface{}) { *h = append(*h, x.(bin)) }
func (h *binHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*binHeap)(nil)
