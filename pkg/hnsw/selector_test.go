package hnsw

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapneel/go-hnsw/pkg/vector"
)

func TestSelectNeighborsPrefersDiversityOverRawProximity(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})

	// Two near-duplicate points close to the query, and one farther but
	// in a different direction. A pure "k nearest" selector would pick
	// both duplicates; the diversity heuristic should reject the second
	// duplicate in favor of the farther, distinct point.
	idx.nodes[1] = newNode(vector.Item{ID: 1, Vector: []float64{1, 0}}, 0)
	idx.nodes[2] = newNode(vector.Item{ID: 2, Vector: []float64{1.01, 0}}, 0)
	idx.nodes[3] = newNode(vector.Item{ID: 3, Vector: []float64{0, 1}}, 0)

	query := []float64{1, 0.01}
	candidates := []neighbor{
		{id: 1, distance: idx.distance(query, idx.nodes[1].item.Vector)},
		{id: 2, distance: idx.distance(query, idx.nodes[2].item.Vector)},
		{id: 3, distance: idx.distance(query, idx.nodes[3].item.Vector)},
	}

	selected := idx.selectNeighbors(query, candidates, 2)
	require.Len(t, selected, 2)

	ids := map[uint64]bool{}
	for _, s := range selected {
		ids[s.id] = true
	}
	assert.True(t, ids[1], "closest point should always be selected")
	assert.True(t, ids[3], "diverse farther point should beat the near-duplicate")
	assert.False(t, ids[2], "near-duplicate should be pruned by the diversity check")
}

func TestSelectNeighborsStopsAtBound(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})
	// Points in different directions from the query, so more than two
	// candidates pass the diversity check and only the bound stops it.
	vecs := [][]float64{{1, 0}, {0, 2}, {-3, 0}, {0, -4}, {5, 5}}
	for i := uint64(1); i <= 5; i++ {
		idx.nodes[i] = newNode(vector.Item{ID: i, Vector: vecs[i-1]}, 0)
	}

	query := []float64{0, 0}
	candidates := make([]neighbor, 0, 5)
	for i := uint64(1); i <= 5; i++ {
		candidates = append(candidates, neighbor{id: i, distance: idx.distance(query, idx.nodes[i].item.Vector)})
	}

	selected := idx.selectNeighbors(query, candidates, 2)
	assert.Len(t, selected, 2)
}

func TestSelectNeighborsEmptyCandidates(t *testing.T) {
	idx := New(Options{Registerer: prometheus.NewRegistry()})
	selected := idx.selectNeighbors([]float64{0, 0}, nil, 4)
	assert.Empty(t, selected)
}
