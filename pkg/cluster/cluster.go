// Package cluster is a toy clustering tool built on top of the index:
// it routes every indexed vector to the cluster owned by its nearest
// neighbor modulo cluster count. Not part of the HNSW core — the
// modulo-id label is a deliberately naive hash, kept as-is even though
// it produces arbitrary-looking cluster assignments.
package cluster

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/swapneel/go-hnsw/pkg/hnsw"
	"github.com/swapneel/go-hnsw/pkg/loader"
)

// record pairs a stored vector with the filename it was read from, so
// the output files can annotate provenance.
type record struct {
	vector   []float64
	filename string
}

// Processor builds an index over an input directory of vector files
// and assigns each vector to a cluster.
type Processor struct {
	index       *hnsw.Index
	records     map[uint64]record
	clusters    map[uint64][]uint64
	numClusters uint64
	logger      *zap.Logger
}

// NewProcessor constructs a clustering processor targeting
// numClusters clusters. numClusters must be at least 1.
func NewProcessor(numClusters int, opts hnsw.Options, logger *zap.Logger) (*Processor, error) {
	if numClusters < 1 {
		return nil, fmt.Errorf("cluster: numClusters must be >= 1, got %d", numClusters)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		index:       hnsw.New(opts),
		records:     make(map[uint64]record),
		clusters:    make(map[uint64][]uint64),
		numClusters: uint64(numClusters),
		logger:      logger,
	}, nil
}

// ProcessDirectory reads every file in inputDir (non-recursive,
// lexical order) via pkg/loader's whitespace-float format, indexing
// each vector and remembering its source filename.
func (p *Processor) ProcessDirectory(inputDir string) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("cluster: read dir %s: %w", inputDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var nextID uint64
	for _, name := range names {
		path := filepath.Join(inputDir, name)
		items, err := loader.ReadFile(path, nextID)
		if err != nil {
			return fmt.Errorf("cluster: processing %s: %w", path, err)
		}
		for _, item := range items {
			if err := p.index.Add(item); err != nil {
				return fmt.Errorf("cluster: indexing vector %d from %s: %w", item.ID, path, err)
			}
			p.records[item.ID] = record{vector: item.Vector, filename: name}
			nextID++
		}
	}

	p.logger.Info("processed input directory", zap.String("dir", inputDir), zap.Uint64("total_vectors", nextID))
	return nil
}

// ClusterVectors assigns every vector to a cluster: the first
// numClusters vectors seed one cluster each, and every subsequent
// vector is routed via search(k=1) to nearest.ID % numClusters.
func (p *Processor) ClusterVectors() {
	total := uint64(len(p.records))

	for i := uint64(0); i < p.numClusters && i < total; i++ {
		p.clusters[i] = append(p.clusters[i], i)
	}

	for id := p.numClusters; id < total; id++ {
		rec, ok := p.records[id]
		if !ok {
			continue
		}
		results, err := p.index.Search(rec.vector, 1)
		if err != nil || len(results) == 0 {
			continue
		}
		clusterID := results[0].Item.ID % p.numClusters
		p.clusters[clusterID] = append(p.clusters[clusterID], id)
	}

	p.logger.Info("clustering complete", zap.Uint64("total_vectors", total), zap.Uint64("num_clusters", p.numClusters))
}

// WriteClusters writes one `cluster_%05d.txt` file per non-empty
// cluster plus a `cluster_stats.txt` summary into outputDir.
func (p *Processor) WriteClusters(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("cluster: create output dir %s: %w", outputDir, err)
	}

	clusterIDs := make([]uint64, 0, len(p.clusters))
	for id := range p.clusters {
		clusterIDs = append(clusterIDs, id)
	}
	sort.Slice(clusterIDs, func(i, j int) bool { return clusterIDs[i] < clusterIDs[j] })

	for _, clusterID := range clusterIDs {
		ids := p.clusters[clusterID]
		path := filepath.Join(outputDir, fmt.Sprintf("cluster_%05d.txt", clusterID))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cluster: create %s: %w", path, err)
		}

		w := bufio.NewWriter(f)
		fmt.Fprintf(w, "# Cluster %d - %d vectors\n", clusterID, len(ids))
		fmt.Fprintf(w, "# Format: vector_components | original_filename\n")
		for _, id := range ids {
			rec := p.records[id]
			for _, c := range rec.vector {
				fmt.Fprintf(w, "%.6f ", c)
			}
			fmt.Fprintf(w, "| %s\n", rec.filename)
		}
		if err := w.Flush(); err != nil {
			f.Close()
			return fmt.Errorf("cluster: write %s: %w", path, err)
		}
		f.Close()
	}

	return p.writeStats(outputDir)
}

func (p *Processor) writeStats(outputDir string) error {
	path := filepath.Join(outputDir, "cluster_stats.txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cluster: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Clustering Statistics")
	fmt.Fprintln(w, "--------------------")
	fmt.Fprintf(w, "Total vectors: %d\n", len(p.records))
	fmt.Fprintf(w, "Number of clusters: %d\n", p.numClusters)
	fmt.Fprintln(w, "\nCluster sizes:")

	type sizeEntry struct {
		id   uint64
		size int
	}
	sizes := make([]sizeEntry, 0, len(p.clusters))
	for id, ids := range p.clusters {
		sizes = append(sizes, sizeEntry{id: id, size: len(ids)})
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].size > sizes[j].size })

	for _, s := range sizes {
		fmt.Fprintf(w, "Cluster %5d: %6d vectors\n", s.id, s.size)
	}

	return w.Flush()
}
