package hnsw

import "container/heap"

// neighbor is the ephemeral (id, distance-to-query) pair used by the
// candidate queues during search and selection. Never persisted.
type neighbor struct {
	id       uint64
	distance float64
}

// minHeap is a min-priority-by-distance queue, used as the search
// frontier: the next candidate to expand is always the closest one not
// yet expanded.
type minHeap []neighbor

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].distance < h[j].distance }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// maxHeap is a max-priority-by-distance queue, used as the bounded
// result set: when it overflows capacity ef, the farthest candidate is
// evicted first.
type maxHeap []neighbor

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].distance > h[j].distance }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// drainAscending pops every element of a maxHeap and returns them
// sorted ascending by distance. The heap is consumed: it is empty
// afterwards.
func drainAscending(h *maxHeap) []neighbor {
	out := make([]neighbor, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(neighbor)
	}
	return out
}
