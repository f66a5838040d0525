package sdif

import (
	"math"
	"testing"

	"github.com/kewuaa/radar-algorithm/toa"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// S2: TOAs = 0..10 step 1, max_rank = 3, w = 0.25, x = 0.3, k = 0.5
// should land in [0.75, 1.25].
func TestScenarioS2(t *testing.T) {
	e := New(0.3, 0.5)
	data := toa.Sequence{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	pri, ok := e.Run(data, 3, 0.25)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, pri, 0.75)
	assert.LessOrEqual(t, pri, 1.25)
}

func TestEarlyReturnShortSequence(t *testing.T) {
	e := New(0.3, 0.5)
	for _, data := range []toa.Sequence{nil, {1.0}} {
		_, ok := e.Run(data, 4, 0.25)
		assert.False(t, ok)
	}
}

func TestMonotoneInputStability(t *testing.T) {
	const P = 1.5
	data := make(toa.Sequence, 60)
	for i := range data {
		data[i] = float64(i) * P
	}
	e := New(0.3, 0.5)
	pri, ok := e.Run(data, 3, 0.25)
	assert.True(t, ok)
	assert.InDelta(t, P, pri, 0.25, "PRI should land within one bin of the true period")
}

func TestBinCenterOutputProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 40).Draw(t, "n")
		w := rapid.Float64Range(0.1, 2.0).Draw(t, "w")
		x := rapid.Float64Range(0.01, 0.9).Draw(t, "x")
		k := rapid.Float64Range(0.01, 0.9).Draw(t, "k")
		maxRank := rapid.IntRange(1, 4).Draw(t, "maxRank")
		step := rapid.Float64Range(0.1, 5.0).Draw(t, "step")

		data := make(toa.Sequence, n)
		for i := range data {
			data[i] = float64(i) * step
		}

		e := New(x, k)
		pri, ok := e.Run(data, maxRank, w)
		if !ok {
			return
		}
		frac := pri/w - 0.5
		assert.InDelta(t, math.Round(frac), frac, 1e-9)
		assert.GreaterOrEqual(t, frac, -1e-9)
	})
}
