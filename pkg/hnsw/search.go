package hnsw

import "container/heap"

// greedyDescent repeatedly replaces ep with its neighbor at layer
// minimizing distance to query, until no neighbor improves on ep. Used
// both by insertion (descending from the entry point down to the
// target layer) and by querying (descending through the upper layers
// before the base-layer expansion).
func (idx *Index) greedyDescent(query []float64, ep uint64, layer int) uint64 {
	current := ep
	currentDist := idx.distanceTo(query, current)

	for {
		improved := false
		for _, nid := range idx.nodes[current].neighbors(layer) {
			n, ok := idx.nodes[nid]
			if !ok {
				continue // unresolvable neighbor id (an internal invariant violation); skipped
			}
			d := idx.distance(query, n.item.Vector)
			if d < currentDist {
				current = nid
				currentDist = d
				improved = true
			}
		}
		if !improved {
			return current
		}
	}
}

// searchLayer runs a best-first traversal of a single layer: seed the
// frontier and result set with entry, repeatedly expand the closest
// unexpanded candidate, and stop once the frontier can no longer beat
// the current worst kept result. Returns up to ef results ascending by
// distance to query.
func (idx *Index) searchLayer(query []float64, entry uint64, ef int, layer int) []neighbor {
	visited := map[uint64]bool{entry: true}

	entryDist := idx.distanceTo(query, entry)

	candidates := &minHeap{{id: entry, distance: entryDist}}
	results := &maxHeap{{id: entry, distance: entryDist}}
	heap.Init(candidates)
	heap.Init(results)

	for candidates.Len() > 0 {
		c := heap.Pop(candidates).(neighbor)

		worst := (*results)[0].distance
		if results.Len() >= ef && c.distance > worst {
			break
		}

		node, ok := idx.nodes[c.id]
		if !ok {
			continue
		}
		for _, nid := range node.neighbors(layer) {
			if visited[nid] {
				continue
			}
			visited[nid] = true

			neighborNode, ok := idx.nodes[nid]
			if !ok {
				continue
			}
			d := idx.distance(query, neighborNode.item.Vector)

			if results.Len() < ef || d < (*results)[0].distance {
				heap.Push(candidates, neighbor{id: nid, distance: d})
				heap.Push(results, neighbor{id: nid, distance: d})
				if results.Len() > ef {
					heap.Pop(results)
				}
			}
		}
	}

	return drainAscending(results)
}

func (idx *Index) distanceTo(query []float64, id uint64) float64 {
	return idx.distance(query, idx.nodes[id].item.Vector)
}
