package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclidean(t *testing.T) {
	assert.Equal(t, 0.0, Euclidean([]float64{1, 2, 3}, []float64{1, 2, 3}))
	assert.InDelta(t, 5.0, Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-9)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite([]float64{1, -2.5, 0}))
	assert.False(t, Finite([]float64{1, math.NaN()}))
	assert.False(t, Finite([]float64{math.Inf(1), 0}))
	assert.False(t, Finite([]float64{math.Inf(-1)}))
}
