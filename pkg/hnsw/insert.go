package hnsw

import "math"

// randomLevel samples a layer as floor(-ln(U) * mL), U uniform in
// (0,1], clamped to [0, maxLayer].
func (idx *Index) randomLevel() int {
	u := idx.rng.Float64()
	for u == 0 {
		u = idx.rng.Float64()
	}
	level := int(math.Floor(-math.Log(u) * idx.mL))
	if level > idx.maxLayer {
		level = idx.maxLayer
	}
	return level
}

// insert runs the insertion driver for a node that has already been
// stored in idx.nodes and assigned its layer. Caller must hold the
// write lock.
func (idx *Index) insert(n *node) {
	if !idx.hasEntry {
		idx.entryPoint = n.id
		idx.hasEntry = true
		return
	}

	epID := idx.entryPoint
	epNode := idx.nodes[epID]
	topLayer := epNode.topLayer

	// Descent phase: greedy descent from the top layer down to one
	// above the new node's assigned layer.
	for lc := topLayer; lc > n.topLayer; lc-- {
		epID = idx.greedyDescent(n.item.Vector, epID, lc)
	}

	// Insertion phase: from min(topLayer, n.topLayer) down to 0, search
	// + select + connect + prune.
	for lc := min(topLayer, n.topLayer); lc >= 0; lc-- {
		ef := idx.efConstruction
		candidates := idx.searchLayer(n.item.Vector, epID, ef, lc)

		bound := idx.m
		if lc == 0 {
			bound = idx.mMax0
		}

		chosen := idx.selectNeighbors(n.item.Vector, candidates, bound)

		for _, c := range chosen {
			if n.addNeighbor(lc, c.id) {
				idx.edgeCount++
			}
			neighborNode := idx.nodes[c.id]
			if neighborNode.addNeighbor(lc, n.id) {
				idx.edgeCount++
			}

			maxConn := idx.m
			if lc == 0 {
				maxConn = idx.mMax0
			}
			if len(neighborNode.connections[lc]) > maxConn {
				idx.prune(neighborNode, lc, maxConn)
			}
		}

		if len(chosen) > 0 {
			epID = chosen[0].id
		}
	}

	if n.topLayer > topLayer {
		idx.entryPoint = n.id
	}
}

// prune re-runs the neighbor selector over a node's full current
// neighbor set at layer, bounded by maxConn, and installs the result.
// Re-selecting over the whole set (rather than dropping a single
// candidate) keeps the surviving neighbors diverse instead of just
// nearest.
func (idx *Index) prune(n *node, layer int, maxConn int) {
	current := n.connections[layer]
	candidates := make([]neighbor, 0, len(current))
	for _, id := range current {
		neighborNode, ok := idx.nodes[id]
		if !ok {
			continue
		}
		candidates = append(candidates, neighbor{
			id:       id,
			distance: idx.distance(n.item.Vector, neighborNode.item.Vector),
		})
	}

	selected := idx.selectNeighbors(n.item.Vector, candidates, maxConn)
	ids := make([]uint64, len(selected))
	for i, s := range selected {
		ids[i] = s.id
	}
	idx.edgeCount += len(ids) - len(current)
	n.setNeighbors(layer, ids)
}
