package search

// minHeap is a textbook binary heap over frontierItem ordered by
// ascending FScore, used directly (no lock) by the sequential variant
// and wrapped in a mutex by the parallel MutexStdPQ open-set.
type minHeap []frontierItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].FScore < h[j].FScore }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
