// Package pritransform implements the PRI-Transform estimator: a
// complex-phasor accumulation over a bounded candidate-PRI range, per
// radar_algorithm's PRITransform.
package pritransform

import (
	"math"
	"math/cmplx"

	"github.com/kewuaa/radar-algorithm/internal/binning"
	"github.com/kewuaa/radar-algorithm/internal/obslog"
	"github.com/kewuaa/radar-algorithm/toa"
)

// minDelta floors the denominator of the phasor angle to avoid a
// divide-by-zero when tail and head TOAs coincide.
const minDelta = 1e-9

// Estimator is the PRI-Transform estimator, immutable after construction
// and safe for concurrent use.
type Estimator struct {
	alpha, beta, gamma float64
}

// New constructs a PRI-Transform estimator. alpha is loss-rate related and
// intended in (0, 1], beta is the subharmonic-suppression coefficient
// (typically ~0.15), gamma is the noise-suppression coefficient (typically
// ~3). Out-of-range alpha/beta are logged as a warning but do not block
// construction.
func New(alpha, beta, gamma float64) *Estimator {
	if alpha <= 0 || alpha > 1 {
		obslog.Warnf("pritransform: alpha should be between (0, 1], got %v", alpha)
	}
	if beta <= 0 || beta >= 1 {
		obslog.Warnf("pritransform: beta should be between (0, 1), got %v", beta)
	}
	return &Estimator{alpha: alpha, beta: beta, gamma: gamma}
}

// Run estimates a PRI from data within candidate range [r0, r1] using bin
// width w. Returns false if data has fewer than 2 pulses, or no bin's
// accumulated phasor magnitude exceeds its threshold.
func (e *Estimator) Run(data toa.Sequence, r0, r1, w float64) (pri float64, ok bool) {
	if data.Len() < 2 {
		return 0, false
	}

	n := data.Len()
	duration := data.Duration()

	// One guard bin tolerates delta landing exactly on r1.
	binNum := binning.Count(r1-r0, w) + 1
	hist := make([]complex128, binNum)

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
			denom := math.Max(delta, minDelta)
			theta := 2 * math.Pi * data[tail] / denom
			hist[idx] += cmplx.Rect(1, theta)
		}
	}

	suppressSub := e.beta * float64(n)
	suppressNoise := e.gamma * math.Sqrt(duration*math.Pow(float64(n)/duration, 2)*w)

	for i := 0; i < binNum; i++ {
		candidate := binning.Center(i, r0, w)
		thr := math.Max(e.alpha*duration/candidate, math.Max(suppressSub, suppressNoise))
		if cmplx.Abs(hist[i]) > thr {
			return candidate, true
		}
	}
	return 0, false
}
