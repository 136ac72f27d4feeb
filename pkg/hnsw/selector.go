package hnsw

import "sort"

// selectNeighbors implements a diversity-preserving neighbor heuristic:
// sort candidates ascending by distance to q, then greedily accept a
// candidate only if it is at least as close to q as it is to every
// already-selected neighbor. This rejects candidates that cluster
// around an already-chosen neighbor, preserving the angular spread
// that keeps the graph navigable.
//
// qVector is the new item's vector during insertion, or the host
// node's own vector when re-pruning an existing node's connections.
func (idx *Index) selectNeighbors(qVector []float64, candidates []neighbor, k int) []neighbor {
	sorted := make([]neighbor, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].distance != sorted[j].distance {
			return sorted[i].distance < sorted[j].distance
		}
		return sorted[i].id < sorted[j].id
	})

	selected := make([]neighbor, 0, k)
	for _, c := range sorted {
		if len(selected) == k {
			break
		}
		cVector := idx.nodes[c.id].item.Vector

		accept := true
		for _, s := range selected {
			if idx.distance(cVector, idx.nodes[s.id].item.Vector) < idx.distance(cVector, qVector) {
				accept = false
				break
			}
		}
		if accept {
			selected = append(selected, c)
		}
	}
	return selected
}
