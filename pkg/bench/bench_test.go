package bench

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapneel/go-hnsw/pkg/hnsw"
)

func TestRecallAtK(t *testing.T) {
	truth := []uint64{1, 2, 3, 4, 5}

	assert.Equal(t, 1.0, recallAtK([]uint64{5, 4, 3, 2, 1}, truth))
	assert.Equal(t, 0.6, recallAtK([]uint64{1, 2, 3, 99, 100}, truth))
	assert.Equal(t, 0.0, recallAtK([]uint64{99, 100}, truth))
}

func TestAveragePrecisionRewardsEarlyHits(t *testing.T) {
	truth := []uint64{1, 2}

	early := averagePrecision([]uint64{1, 2, 3}, truth)
	late := averagePrecision([]uint64{3, 1, 2}, truth)
	assert.Greater(t, early, late)
}

func TestRunReportsStatisticalRecall(t *testing.T) {
	// Small-scale smoke test of the harness itself: exercises the same
	// code path as a full-scale run, at a size that runs fast in CI.
	cfg := Config{NumVectors: 300, Dimensions: 8, NumQueries: 20, K: 5, Seed: 11}
	report, err := Run(cfg, hnsw.Options{Registerer: prometheus.NewRegistry()}, nil)
	require.NoError(t, err)

	assert.Equal(t, 300, report.Stats.TotalNodes)
	assert.GreaterOrEqual(t, report.MeanRecallAtK, 0.5)
	assert.GreaterOrEqual(t, report.MeanAveragePrecision, 0.0)
	assert.Greater(t, report.VectorsPerSecond, 0.0)
	assert.Greater(t, report.QueriesPerSecond, 0.0)
}
