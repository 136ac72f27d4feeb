package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swapneel/go-hnsw/pkg/cluster"
)

func runCluster(cmd *cobra.Command, args []string) error {
	inputDir, outputDir, clustersArg := args[0], args[1], args[2]

	numClusters, err := strconv.Atoi(clustersArg)
	if err != nil {
		return fmt.Errorf("num_clusters must be an integer, got %q: %w", clustersArg, err)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	fmt.Println("Vector Clustering Tool")
	fmt.Println("--------------------")
	fmt.Printf("Input directory:  %s\n", inputDir)
	fmt.Printf("Output directory: %s\n", outputDir)
	fmt.Printf("Number of clusters: %d\n", numClusters)

	processor, err := cluster.NewProcessor(numClusters, indexOptions(logger), logger)
	if err != nil {
		return err
	}

	if err := processor.ProcessDirectory(inputDir); err != nil {
		return fmt.Errorf("processing directory: %w", err)
	}

	processor.ClusterVectors()

	if err := processor.WriteClusters(outputDir); err != nil {
		return fmt.Errorf("writing clusters: %w", err)
	}

	fmt.Printf("\nClustering complete. Output written to %s\n", outputDir)
	return nil
}
