// pritransform.go implements the public PRITransform API.

package radarpri

import (
	"github.com/kewuaa/radar-algorithm/internal/pritransform"
	"github.com/kewuaa/radar-algorithm/toa"
)

// PRITransform is the complex-phasor-accumulation PRI estimator over a
// bounded candidate range.
//
// A PRITransform instance is immutable after construction and safe to
// call concurrently from multiple goroutines.
type PRITransform struct {
	inner *pritransform.Estimator
}

// NewPRITransform constructs a PRITransform estimator. alpha is loss-rate
// related and intended in (0, 1], beta is the subharmonic-suppression
// coefficient (typically ~0.15), gamma is the noise-suppression
// coefficient (typically ~3). Out-of-range alpha/beta are logged as a
// warning but do not prevent construction.
func NewPRITransform(alpha, beta, gamma float64) *PRITransform {
	return &PRITransform{inner: pritransform.New(alpha, beta, gamma)}
}

// Run estimates a PRI from data within candidate range [r0, r1] using bin
// width w. ok is false if data has fewer than 2 pulses or no bin's
// accumulated phasor magnitude exceeds its threshold.
func (p *PRITransform) Run(data toa.Sequence, r0, r1, binWidth float64) (pri float64, ok bool) {
	return p.inner.Run(data, r0, r1, binWidth)
}
