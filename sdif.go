// sdif.go implements the public SDIF API.

package radarpri

import (
	"github.com/kewuaa/radar-algorithm/internal/sdif"
	"github.com/kewuaa/radar-algorithm/toa"
)

// SDIF is the Second-order Difference Histogram PRI estimator.
//
// A SDIF instance is immutable after construction and safe to call
// concurrently from multiple goroutines.
type SDIF struct {
	inner *sdif.Estimator
}

// NewSDIF constructs an SDIF estimator with coefficients x and k, both
// intended to lie in (0, 1). Out-of-range values are logged as a warning
// but do not prevent construction.
func NewSDIF(x, k float64) *SDIF {
	return &SDIF{inner: sdif.New(x, k)}
}

// Run estimates a PRI from data using up to maxRank ranks and bin width
// w. At rank 1, more than one candidate bin defers to the next rank
// rather than returning ambiguously. ok is false if data has fewer than 2
// pulses or no rank yields an unambiguous candidate.
func (s *SDIF) Run(data toa.Sequence, maxRank int, binWidth float64) (pri float64, ok bool) {
	return s.inner.Run(data, maxRank, binWidth)
}
