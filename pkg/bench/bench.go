// Package bench is a benchmark harness: it generates random vectors,
// builds an index from them, runs random queries, and reports
// recall@k, build time, QPS, and mean-average precision against
// brute-force ground truth.
package bench

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/swapneel/go-hnsw/internal/telemetry"
	"github.com/swapneel/go-hnsw/pkg/hnsw"
	"github.com/swapneel/go-hnsw/pkg/vector"
)

// Config parameterizes a benchmark run.
type Config struct {
	NumVectors int
	Dimensions int
	NumQueries int
	K          int
	Seed       int64
}

// DefaultConfig returns a configuration sized to exercise recall@10
// without requiring a multi-minute run by default — callers needing a
// larger-scale run set NumVectors themselves.
func DefaultConfig() Config {
	return Config{
		NumVectors: 10_000,
		Dimensions: 128,
		NumQueries: 100,
		K:          10,
		Seed:       1,
	}
}

// Report is the result of a benchmark run.
type Report struct {
	BuildTime            time.Duration
	VectorsPerSecond     float64
	QueriesPerSecond     float64
	MeanRecallAtK        float64
	MeanAveragePrecision float64
	Stats                hnsw.Stats
}

// randomVector returns a vector uniform in [-1, 1]^dim.
func randomVector(rng *rand.Rand, dim int) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

// bruteForceTopK returns the k nearest ids to query among corpus,
// ascending by distance, computed by exhaustive scan. Ground truth for
// recall/MAP measurement.
func bruteForceTopK(distance vector.DistanceFunc, query []float64, corpus []vector.Item, k int) []uint64 {
	type scored struct {
		id   uint64
		dist float64
	}
	scores := make([]scored, len(corpus))
	for i, item := range corpus {
		scores[i] = scored{id: item.ID, dist: distance(query, item.Vector)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].dist < scores[j].dist })

	if k > len(scores) {
		k = len(scores)
	}
	out := make([]uint64, k)
	for i := 0; i < k; i++ {
		out[i] = scores[i].id
	}
	return out
}

// recallAtK is |approx ∩ truth| / |truth|.
func recallAtK(approx, truth []uint64) float64 {
	if len(truth) == 0 {
		return 1.0
	}
	truthSet := make(map[uint64]bool, len(truth))
	for _, id := range truth {
		truthSet[id] = true
	}
	hits := 0
	for _, id := range approx {
		if truthSet[id] {
			hits++
		}
	}
	return float64(hits) / float64(len(truth))
}

// averagePrecision scores approx against truth treating truth as the
// relevant set, rewarding hits that land earlier in approx's ranking.
func averagePrecision(approx, truth []uint64) float64 {
	if len(truth) == 0 {
		return 1.0
	}
	truthSet := make(map[uint64]bool, len(truth))
	for _, id := range truth {
		truthSet[id] = true
	}

	var sumPrecision float64
	hits := 0
	for i, id := range approx {
		if truthSet[id] {
			hits++
			sumPrecision += float64(hits) / float64(i+1)
		}
	}
	if hits == 0 {
		return 0
	}
	return sumPrecision / float64(len(truth))
}

// Run builds a fresh index over cfg.NumVectors random vectors, issues
// cfg.NumQueries random queries, and reports timing and accuracy
// metrics against brute-force ground truth.
func Run(cfg Config, opts hnsw.Options, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	logger.Info("generating corpus", telemetry.Operation("bench_generate"), telemetry.Count(cfg.NumVectors))
	corpus := make([]vector.Item, cfg.NumVectors)
	for i := range corpus {
		corpus[i] = vector.Item{ID: uint64(i), Vector: randomVector(rng, cfg.Dimensions)}
	}

	idx := hnsw.New(opts)

	logger.Info("building index", telemetry.Operation("bench_build"))
	buildStart := time.Now()
	if err := idx.BatchAdd(corpus); err != nil {
		return Report{}, err
	}
	buildTime := time.Since(buildStart)

	distance := opts.Distance
	if distance == nil {
		distance = hnsw.Euclidean
	}

	logger.Info("running queries", telemetry.Operation("bench_query"), telemetry.Count(cfg.NumQueries))
	var queryTime time.Duration
	var totalRecall, totalAP float64
	for q := 0; q < cfg.NumQueries; q++ {
		query := randomVector(rng, cfg.Dimensions)

		searchStart := time.Now()
		results, err := idx.Search(query, cfg.K)
		queryTime += time.Since(searchStart)
		if err != nil {
			return Report{}, err
		}
		approx := make([]uint64, len(results))
		for i, r := range results {
			approx[i] = r.Item.ID
		}

		truth := bruteForceTopK(distance, query, corpus, cfg.K)
		totalRecall += recallAtK(approx, truth)
		totalAP += averagePrecision(approx, truth)
	}

	report := Report{
		BuildTime:            buildTime,
		VectorsPerSecond:     float64(cfg.NumVectors) / buildTime.Seconds(),
		QueriesPerSecond:     float64(cfg.NumQueries) / queryTime.Seconds(),
		MeanRecallAtK:        totalRecall / float64(cfg.NumQueries),
		MeanAveragePrecision: totalAP / float64(cfg.NumQueries),
		Stats:                idx.Stats(),
	}

	logger.Info("benchmark complete",
		telemetry.Operation("bench_report"),
		zap.Float64("mean_recall_at_k", report.MeanRecallAtK),
		zap.Float64("mean_average_precision", report.MeanAveragePrecision),
		zap.Float64("vectors_per_second", report.VectorsPerSecond),
		zap.Float64("queries_per_second", report.QueriesPerSecond),
	)

	return report, nil
}
