package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swapneel/go-hnsw/pkg/bench"
)

var (
	benchVectors int
	benchDim     int
	benchQueries int
	benchK       int
	benchSeed    int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "build a random index and report recall@k, build time, and QPS",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchVectors, "vectors", bench.DefaultConfig().NumVectors, "number of random vectors to index")
	benchCmd.Flags().IntVar(&benchDim, "dim", bench.DefaultConfig().Dimensions, "vector dimensionality")
	benchCmd.Flags().IntVar(&benchQueries, "queries", bench.DefaultConfig().NumQueries, "number of random queries to issue")
	benchCmd.Flags().IntVar(&benchK, "k", bench.DefaultConfig().K, "neighbors to retrieve per query")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", bench.DefaultConfig().Seed, "RNG seed")
}

func runBench(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	cfg := bench.Config{
		NumVectors: benchVectors,
		Dimensions: benchDim,
		NumQueries: benchQueries,
		K:          benchK,
		Seed:       benchSeed,
	}

	report, err := bench.Run(cfg, indexOptions(logger), logger)
	if err != nil {
		return err
	}

	fmt.Println("=== HNSW Index Benchmark ===")
	fmt.Printf("  Vectors:    %d\n", cfg.NumVectors)
	fmt.Printf("  Dimensions: %d\n", cfg.Dimensions)
	fmt.Printf("  Queries:    %d\n", cfg.NumQueries)
	fmt.Printf("  k:          %d\n", cfg.K)
	fmt.Printf("  Build time:  %s (%.2f vectors/sec)\n", report.BuildTime, report.VectorsPerSecond)
	fmt.Printf("  QPS:         %.2f\n", report.QueriesPerSecond)
	fmt.Printf("  Recall@%d:   %.4f\n", cfg.K, report.MeanRecallAtK)
	fmt.Printf("  MAP:         %.4f\n", report.MeanAveragePrecision)
	fmt.Printf("  Index nodes: %d, edges: %d, max layer: %d\n",
		report.Stats.TotalNodes, report.Stats.TotalEdges, report.Stats.ObservedMaxLayer)

	return nil
}
