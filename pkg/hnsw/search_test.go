package hnsw

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapneel/go-hnsw/pkg/vector"
)

// buildChain wires up a simple path graph 0 - 1 - 2 - ... - n-1 at
// layer 0, so greedyDescent and searchLayer have something non-trivial
// to traverse without going through the full insertion driver.
func buildChain(idx *Index, n int) {
	for i := uint64(0); i < uint64(n); i++ {
		idx.nodes[i] = newNode(vector.Item{ID: i, Vector: []float64{float64(i)}}, 0)
	}
	for i := uint64(0); i < uint64(n); i++ {
		if i > 0 {
			idx.nodes[i].addNeighbor(0, i-1)
		}
		if i+1 < uint64(n) {
			idx.nodes[i].addNeighbor(0, i+1)
		}
	}
	idx.entryPoint = 0
	idx.hasEntry = true
}

func TestGreedyDescentFindsLocalMinimum(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})
	buildChain(idx, 10)

	got := idx.greedyDescent([]float64{7}, 0, 0)
	assert.Equal(t, uint64(7), got)
}

func TestSearchLayerReturnsAscendingByDistance(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})
	buildChain(idx, 20)

	results := idx.searchLayer([]float64{10}, 0, 5, 0)
	require.Len(t, results, 5)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].distance, results[i].distance)
	}
	assert.Equal(t, uint64(10), results[0].id)
}

func TestSearchLayerRespectsEfBound(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})
	buildChain(idx, 50)

	results := idx.searchLayer([]float64{25}, 0, 3, 0)
	assert.Len(t, results, 3)
}
