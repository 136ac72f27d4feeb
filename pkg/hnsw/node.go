package hnsw

import "github.com/swapneel/go-hnsw/pkg/vector"

// node is a stored item plus, per layer it participates in, a bounded
// list of neighbor ids. connections[L] holds the neighbors at layer L;
// len(connections) == topLayer+1.
type node struct {
	id          uint64
	item        vector.Item
	topLayer    int
	connections [][]uint64
}

func newNode(item vector.Item, topLayer int) *node {
	conns := make([][]uint64, topLayer+1)
	for l := range conns {
		conns[l] = make([]uint64, 0, 4)
	}
	return &node{id: item.ID, item: item, topLayer: topLayer, connections: conns}
}

func (n *node) neighbors(layer int) []uint64 {
	if layer > n.topLayer {
		return nil
	}
	return n.connections[layer]
}

func (n *node) hasNeighbor(layer int, id uint64) bool {
	for _, c := range n.connections[layer] {
		if c == id {
			return true
		}
	}
	return false
}

func (n *node) addNeighbor(layer int, id uint64) bool {
	if n.hasNeighbor(layer, id) || id == n.id {
		return false
	}
	n.connections[layer] = append(n.connections[layer], id)
	return true
}

func (n *node) setNeighbors(layer int, ids []uint64) {
	n.connections[layer] = ids
}
