// pulsesearch.go implements the public PulseSearcher API.

package radarpri

import (
	"github.com/kewuaa/radar-algorithm/internal/pulsesearch"
	"github.com/kewuaa/radar-algorithm/toa"
)

// PulseSearcher extracts the chain of pulses matching a known PRI,
// tolerating a bounded miss rate by re-syncing its search target on
// every accepted pulse.
//
// A PulseSearcher instance is immutable after construction and safe to
// call concurrently from multiple goroutines.
type PulseSearcher struct {
	inner *pulsesearch.Estimator
}

// NewPulseSearcher constructs a PulseSearcher extractor. thr is the
// minimum chain length to accept; toler is the search tolerance around
// the expected target TOA; allowMissRate in [0, 1] bounds how much of a
// hypothesized chain may be missing pulses. Out-of-range toler or
// allowMissRate are logged as a warning but do not prevent construction.
func NewPulseSearcher(thr int, toler, allowMissRate float64) *PulseSearcher {
	return &PulseSearcher{inner: pulsesearch.New(thr, toler, allowMissRate)}
}

// Run searches data for a chain of pulses spaced by pri. ok is false if
// no chain of length >= thr was found.
func (p *PulseSearcher) Run(pri float64, data toa.Sequence) (Extraction, bool) {
	return p.inner.Run(pri, data)
}
