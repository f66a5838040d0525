package pulsecorrelation

import (
	"sort"
	"testing"

	"github.com/kewuaa/radar-algorithm/toa"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// S5: interleave of [0,3,6,9,12,15] and [0.7,1.9,3.1,4.3], range (0.5, 4),
// w = 0.25, merge_num = 2, min_chain = 3, thr = 3 should extract one of
// the two progressions' indices.
func TestScenarioS5(t *testing.T) {
	a := []float64{0, 3, 6, 9, 12, 15}
	b := []float64{0.7, 1.9, 3.1, 4.3}

	merged := append(append([]float64{}, a...), b...)
	sort.Float64s(merged)

	aSet := toFloatSet(a)
	bSet := toFloatSet(b)

	data := toa.Sequence(merged)
	e := New(3, 3)
	result, ok := e.Run(data, 0.5, 4, 0.25, 2)
	assert.True(t, ok)

	extractedVals := make([]float64, len(result.Extracted))
	for i, idx := range result.Extracted {
		extractedVals[i] = data[idx]
	}

	matchesA := sameSet(extractedVals, aSet)
	matchesB := sameSet(extractedVals, bSet)
	assert.True(t, matchesA || matchesB, "extracted set should equal one progression: got %v", extractedVals)
}

func toFloatSet(vals []float64) map[float64]bool {
	m := make(map[float64]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func sameSet(vals []float64, set map[float64]bool) bool {
	if len(vals) != len(set) {
		return false
	}
	for _, v := range vals {
		if !set[v] {
			return false
		}
	}
	return true
}

func TestEarlyReturnFewPulses(t *testing.T) {
	e := New(3, 10)
	data := toa.Sequence{0, 1, 2}
	_, ok := e.Run(data, 0.5, 4, 0.25, 2)
	assert.False(t, ok)
}

// Partition law: extracted/remaining partition [0, n) disjointly and in
// ascending order whenever a chain is found.
func TestPartitionLawProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 60).Draw(t, "n")
		step := rapid.Float64Range(0.1, 3.0).Draw(t, "step")
		data := make(toa.Sequence, n)
		for i := range data {
			data[i] = float64(i) * step
		}

		e := New(2, 2)
		result, ok := e.Run(data, 0.1, 10, 0.5, 2)
		if !ok {
			return
		}

		seen := make([]bool, n)
		all := append(append([]int{}, result.Extracted...), result.Remaining...)
		assert.Len(t, all, n)
		for _, idx := range result.Extracted {
			assert.False(t, seen[idx], "index %d duplicated", idx)
			seen[idx] = true
		}
		for _, idx := range result.Remaining {
			assert.False(t, seen[idx], "index %d duplicated", idx)
			seen[idx] = true
		}
		assert.True(t, sort.IntsAreSorted(result.Extracted))
		assert.True(t, sort.IntsAreSorted(result.Remaining))
	})
}
