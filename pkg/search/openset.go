package search

import (
	"container/heap"
	"math"
	"sync"

	"rajin/parastar/pkg/container"
)

// openSet is the parallel engine's pluggable frontier: either a
// container/heap protected by one mutex, or container.PriorityQueue
// (already internally synchronized via hand-over-hand locking).
type openSet interface {
	push(item frontierItem)
	pop() (frontierItem, bool)
}

// mutexStdPQ is a standard binary heap guarded by a single global mutex.
type mutexStdPQ struct {
	mu sync.Mutex
	h  minHeap
}

func newMutexStdPQ() *mutexStdPQ {
	q := &mutexStdPQ{}
	heap.Init(&q.h)
	return q
}

func (q *mutexStdPQ) push(item frontierItem) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.h, item)
}

func (q *mutexStdPQ) pop() (frontierItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.h.Len() == 0 {
		return frontierItem{}, false
	}
	return heap.Pop(&q.h).(frontierItem), true
}

// fineLockPQ is an open-set backed by container.PriorityQueue's
// hand-over-hand locking: no external mutex, the container synchronizes
// itself.
type fineLockPQ struct {
	q *container.PriorityQueue[frontierItem]
}

// frontierLess is inverted relative to FScore's natural order: Pop
// always removes the node nearest tail (the "greatest" element under
// less), so to get min-FScore-first behavior out of that queue, "less"
// here must mean "has the larger FScore" — the open-set's minimum then
// sorts to the tail end, where Pop looks.
func frontierLess(a, b frontierItem) bool { return a.FScore > b.FScore }

func newFineLockPQ() *fineLockPQ {
	return &fineLockPQ{
		q: container.New(frontierLess,
			frontierItem{FScore: math.Inf(1)},
			frontierItem{FScore: math.Inf(-1)},
		),
	}
}

func (q *fineLockPQ) push(item frontierItem) {
	// The only failure mode is capacity exhaustion, which this open-set
	// never configures; Push cannot fail here.
	_ = q.q.Push(item)
}

func (q *fineLockPQ) pop() (frontierItem, bool) {
	return q.q.Pop()
}
