package hnsw

import "github.com/swapneel/go-hnsw/pkg/vector"

// DistanceFunc is the pluggable distance contract the index searches
// under. See vector.DistanceFunc for the required properties.
type DistanceFunc = vector.DistanceFunc

// Euclidean is the default distance: sqrt(sum((a_i - b_i)^2)).
var Euclidean DistanceFunc = vector.Euclidean
