package radarpri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// generateArithmeticTOAs builds a pure-PRI TOA sequence t[j] = j*pri, the
// simplest possible monotone-input-stability fixture for the facade
// smoke tests below.
func generateArithmeticTOAs(n int, pri float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i) * pri
	}
	return data
}

func TestCDIFFacade(t *testing.T) {
	c := NewCDIF(0.05)
	pri, ok := c.Run(generateArithmeticTOAs(30, 2.0), 3, 0.5)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, pri, 0.5)
}

func TestSDIFFacade(t *testing.T) {
	s := NewSDIF(0.3, 0.5)
	pri, ok := s.Run(generateArithmeticTOAs(40, 1.5), 3, 0.25)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, pri, 0.25)
}

func TestPRITransformFacade(t *testing.T) {
	p := NewPRITransform(0.5, 0.15, 3)
	pri, ok := p.Run(generateArithmeticTOAs(50, 3.0), 1, 6, 0.1)
	assert.True(t, ok)
	assert.InDelta(t, 3.0, pri, 0.1)
}

func TestPulseSearcherFacade(t *testing.T) {
	p := NewPulseSearcher(3, 0.1, 0.0)
	result, ok := p.Run(2.0, generateArithmeticTOAs(10, 2.0))
	assert.True(t, ok)
	assert.Len(t, result.Extracted, 10)
	assert.Empty(t, result.Remaining)
}

func TestPulseCorrelationFacade(t *testing.T) {
	p := NewPulseCorrelation(2, 2)
	result, ok := p.Run(generateArithmeticTOAs(12, 1.0), 0.5, 2, 0.25, 2)
	assert.True(t, ok)
	assert.NotEmpty(t, result.Extracted)
}
