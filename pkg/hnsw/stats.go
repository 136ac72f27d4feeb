package hnsw

// Stats summarizes the current structural state of the index.
type Stats struct {
	TotalNodes int
	// TotalEdges sums connection-list lengths across every layer and
	// both stored directions (an undirected edge is counted twice).
	TotalEdges int
	// NodesAtLayer[L] is the count of nodes whose topLayer >= L.
	NodesAtLayer []int
	// ObservedMaxLayer is the highest topLayer assigned to any stored node.
	ObservedMaxLayer int
}

// Stats returns a read-only snapshot of the index's structure. Safe
// for concurrent use with Add/BatchAdd; the node table is traversed
// under the shared read lock.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	s := Stats{TotalNodes: len(idx.nodes)}
	if len(idx.nodes) == 0 {
		return s
	}

	for _, n := range idx.nodes {
		if n.topLayer > s.ObservedMaxLayer {
			s.ObservedMaxLayer = n.topLayer
		}
	}
	s.NodesAtLayer = make([]int, s.ObservedMaxLayer+1)

	for _, n := range idx.nodes {
		for l := 0; l <= n.topLayer; l++ {
			s.NodesAtLayer[l]++
		}
		for l := range n.connections {
			s.TotalEdges += len(n.connections[l])
		}
	}

	return s
}
