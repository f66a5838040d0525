// pulsecorrelation.go implements the public PulseCorrelation API.

package radarpri

import (
	"github.com/kewuaa/radar-algorithm/internal/pulsecorrelation"
	"github.com/kewuaa/radar-algorithm/toa"
)

// PulseCorrelation extracts a chain of pulses sharing a common,
// initially-unknown inter-pulse spacing — PRI-free extraction.
//
// A PulseCorrelation instance is immutable after construction and safe
// to call concurrently from multiple goroutines.
type PulseCorrelation struct {
	inner *pulsecorrelation.Estimator
}

// NewPulseCorrelation constructs a PulseCorrelation extractor. minChain
// is the minimum chain length (in pairs) worth searching; a result is
// returned only when its total pulse count exceeds thr. Both are
// expected to be >= 1; out-of-range values are logged as a warning but
// do not prevent construction.
func NewPulseCorrelation(minChain, thr int) *PulseCorrelation {
	return &PulseCorrelation{inner: pulsecorrelation.New(minChain, thr)}
}

// Run searches data for a chain of pulses within candidate range [r0, r1]
// using bin width w, merging evidence across mergeNum adjacent bins. ok
// is false if data has fewer than thr pulses or no chain's total pulse
// count exceeds thr.
func (p *PulseCorrelation) Run(data toa.Sequence, r0, r1, binWidth float64, mergeNum int) (Extraction, bool) {
	return p.inner.Run(data, r0, r1, binWidth, mergeNum)
}
