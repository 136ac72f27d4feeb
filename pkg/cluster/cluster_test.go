package cluster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapneel/go-hnsw/pkg/hnsw"
)

func TestClusterEndToEnd(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "a.txt"), []byte(
		"0 0\n0.1 0\n10 10\n10.1 10\n20 0\n"), 0o644))

	p, err := NewProcessor(3, hnsw.Options{Registerer: prometheus.NewRegistry()}, nil)
	require.NoError(t, err)

	require.NoError(t, p.ProcessDirectory(inputDir))
	p.ClusterVectors()
	require.NoError(t, p.WriteClusters(outputDir))

	statsPath := filepath.Join(outputDir, "cluster_stats.txt")
	stats, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	assert.Contains(t, string(stats), "Total vectors: 5")
	assert.Contains(t, string(stats), "Number of clusters: 3")

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestNewProcessorRejectsZeroClusters(t *testing.T) {
	_, err := NewProcessor(0, hnsw.Options{Registerer: prometheus.NewRegistry()}, nil)
	require.Error(t, err)
}
