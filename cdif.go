// cdif.go implements the public CDIF API.

package radarpri

import (
	"github.com/kewuaa/radar-algorithm/internal/cdif"
	"github.com/kewuaa/radar-algorithm/toa"
)

// CDIF is the Cumulative Difference Histogram PRI estimator.
//
// A CDIF instance is immutable after construction and safe to call
// concurrently from multiple goroutines.
type CDIF struct {
	inner *cdif.Estimator
}

// NewCDIF constructs a CDIF estimator with threshold coefficient k,
// intended range (0, 1). Out-of-range k is logged as a warning but does
// not prevent construction.
func NewCDIF(k float64) *CDIF {
	return &CDIF{inner: cdif.New(k)}
}

// Run estimates a PRI from data using up to maxRank ranks of rank-r
// differences and bin width w. ok is false if data has fewer than 2
// pulses or no bin satisfies CDIF's combined threshold and subharmonic
// test within maxRank ranks.
func (c *CDIF) Run(data toa.Sequence, maxRank int, binWidth float64) (pri float64, ok bool) {
	return c.inner.Run(data, maxRank, binWidth)
}
