// Package hnsw implements an in-memory Hierarchical Navigable Small
// World approximate nearest-neighbor index: the multi-layer proximity
// graph, its insertion algorithm, its search algorithm, and the
// concurrency/distance-abstraction contracts around them.
package hnsw

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/swapneel/go-hnsw/internal/metricsx"
	"github.com/swapneel/go-hnsw/internal/telemetry"
	"github.com/swapneel/go-hnsw/pkg/vector"
)

const (
	DefaultM              = 16
	DefaultEfConstruction = 128
	DefaultEfSearch       = 64
	DefaultMaxLayer       = 16
)

// Options configures a new Index. Zero values fall back to the
// defaults above.
type Options struct {
	M              int
	EfConstruction int
	EfSearch       int
	MaxLayer       int
	Distance       DistanceFunc
	Logger         *zap.Logger
	// Registerer receives the index's Prometheus collectors. Defaults
	// to prometheus.DefaultRegisterer; pass a private
	// prometheus.NewRegistry() in tests to avoid collisions.
	Registerer prometheus.Registerer
}

// Index is the HNSW index shell: it holds the node table, the global
// entry-point reference, the layer-generation parameter, and the
// distance function, and exposes Add/BatchAdd/Search/Stats.
type Index struct {
	mu sync.RWMutex

	nodes      map[uint64]*node
	entryPoint uint64
	hasEntry   bool
	edgeCount  int

	dim    int
	dimSet bool

	distance DistanceFunc
	rng      *rand.Rand

	m              int
	mMax0          int
	efConstruction int
	efSearch       int
	maxLayer       int
	mL             float64

	logger  *zap.Logger
	metrics *metricsx.Collectors
}

// New constructs an empty index. A zero-value Options{} yields the
// package defaults with a Euclidean distance function, a no-op
// logger, and the global Prometheus registry.
func New(opts Options) *Index {
	if opts.M <= 0 {
		opts.M = DefaultM
	}
	if opts.EfConstruction <= 0 {
		opts.EfConstruction = DefaultEfConstruction
	}
	if opts.EfSearch <= 0 {
		opts.EfSearch = DefaultEfSearch
	}
	if opts.MaxLayer <= 0 {
		opts.MaxLayer = DefaultMaxLayer
	}
	if opts.Distance == nil {
		opts.Distance = Euclidean
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	return &Index{
		nodes:          make(map[uint64]*node),
		distance:       opts.Distance,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		m:              opts.M,
		mMax0:          opts.M * 2,
		efConstruction: opts.EfConstruction,
		efSearch:       opts.EfSearch,
		maxLayer:       opts.MaxLayer,
		mL:             1.0 / math.Log(float64(opts.M)),
		logger:         opts.Logger,
		metrics:        metricsx.NewCollectors(opts.Registerer),
	}
}

// Add inserts item into the index. Fails with a *Error of
// KindDuplicateID if the id already exists, KindDimensionMismatch if
// item's vector length differs from the dimension established by the
// first insert, or KindInvalidVector if any component is non-finite.
func (idx *Index) Add(item vector.Item) error {
	start := time.Now()
	defer func() {
		idx.metrics.OpLatency.WithLabelValues("add").Observe(time.Since(start).Seconds())
	}()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !vector.Finite(item.Vector) {
		idx.metrics.RejectedInserts.WithLabelValues(KindInvalidVector.String()).Inc()
		return newError(KindInvalidVector, "item %d: vector has a non-finite component", item.ID)
	}

	if !idx.dimSet {
		idx.dim = len(item.Vector)
		idx.dimSet = true
	} else if len(item.Vector) != idx.dim {
		idx.metrics.RejectedInserts.WithLabelValues(KindDimensionMismatch.String()).Inc()
		return newError(KindDimensionMismatch, "item %d: vector has dimension %d, index expects %d", item.ID, len(item.Vector), idx.dim)
	}

	if _, exists := idx.nodes[item.ID]; exists {
		idx.metrics.RejectedInserts.WithLabelValues(KindDuplicateID.String()).Inc()
		return newError(KindDuplicateID, "item %d already present in index", item.ID)
	}

	level := idx.randomLevel()
	n := newNode(item, level)
	idx.nodes[item.ID] = n
	idx.insert(n)

	idx.metrics.IndexSize.Set(float64(len(idx.nodes)))
	idx.metrics.EdgeCount.Set(float64(idx.edgeCount))
	idx.logger.Debug("inserted item",
		telemetry.Operation("add"),
		zap.Uint64("id", item.ID),
		zap.Int("layer", level),
	)

	return nil
}

// BatchAdd inserts items sequentially, stopping and returning the
// first failure. Items inserted before the failure remain in the
// index.
func (idx *Index) BatchAdd(items []vector.Item) error {
	for i, item := range items {
		if err := idx.Add(item); err != nil {
			idx.logger.Warn("batch add aborted",
				telemetry.Operation("batch_add"),
				zap.Int("succeeded", i),
				zap.Error(err),
			)
			return err
		}
	}
	idx.logger.Info("batch add completed", telemetry.Operation("batch_add"), telemetry.Count(len(items)))
	return nil
}

// Result is a VectorItem together with its distance to the query that
// produced it, returned by Search in ascending distance order.
type Result struct {
	Item     vector.Item
	Distance float64
}

// Search returns up to k items nearest to query, ascending by
// distance. Returns an empty slice if the index is empty. Fails with
// KindDimensionMismatch if query's length doesn't match the index's
// established dimension.
func (idx *Index) Search(query []float64, k int) ([]Result, error) {
	start := time.Now()
	defer func() {
		idx.metrics.OpLatency.WithLabelValues("search").Observe(time.Since(start).Seconds())
	}()

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if !idx.hasEntry {
		return []Result{}, nil
	}

	if idx.dimSet && len(query) != idx.dim {
		return nil, newError(KindDimensionMismatch, "query has dimension %d, index expects %d", len(query), idx.dim)
	}

	ep := idx.entryPoint
	topLayer := idx.nodes[ep].topLayer

	for lc := topLayer; lc > 0; lc-- {
		ep = idx.greedyDescent(query, ep, lc)
	}

	ef := idx.efSearch
	if k > ef {
		ef = k
	}
	candidates := idx.searchLayer(query, ep, ef, 0)

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Item: idx.nodes[c.id].item, Distance: c.distance}
	}

	idx.logger.Debug("search completed",
		telemetry.Operation("search"),
		zap.Int("k", k),
		zap.Int("returned", len(results)),
	)

	return results, nil
}
