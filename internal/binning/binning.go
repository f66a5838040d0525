// Package binning implements the histogram binning primitives shared by
// every PRI estimator: the common "floor((delta - r0) / w)" index, its
// representative bin center, and the bin count sizing formula.
package binning

import "math"

// Index returns the bin index for a rank-r difference delta, given a bin
// width w and range offset r0. Delta exactly on a bin boundary falls into
// the higher bin, since floor rounds toward the lower bin only when delta
// is strictly inside it.
func Index(delta, r0, w float64) int {
	return int(math.Floor((delta - r0) / w))
}

// Center returns the representative value of bin i: (i+0.5)*w + r0.
func Center(i int, r0, w float64) float64 {
	return (float64(i)+0.5)*w + r0
}

// Count returns the number of bins needed to cover a span of the given
// width at the given bin width: ceil(span / w).
func Count(span, w float64) int {
	return int(math.Ceil(span / w))
}
