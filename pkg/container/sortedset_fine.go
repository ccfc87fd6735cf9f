package container

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// fineNode carries its own exclusive lock so that hand-over-hand
// traversal can hold two adjacent nodes locked at a time.
type fineNode[T constraints.Ordered] struct {
	value T
	next  *fineNode[T]
	mu    sync.Mutex
}

// Fine is a sorted singly linked Set using per-node locks and
// hand-over-hand (lock-coupling) traversal: pred is locked before curr,
// and pred's lock is released only once curr is locked. Locks are always
// taken head-to-tail, so no cycle can form and the container is
// deadlock-free.
type Fine[T constraints.Ordered] struct {
	head *fineNode[T]
	tail *fineNode[T]
	size atomic.Int64
	cap  capacity
}

// NewFine builds an empty Set whose sentinels hold min and max.
func NewFine[T constraints.Ordered](min, max T) *Fine[T] {
	tail := &fineNode[T]{value: max}
	head := &fineNode[T]{value: min, next: tail}
	return &Fine[T]{head: head, tail: tail}
}

// WithCapacity bounds the number of data nodes; Add beyond that bound
// fails with ErrAllocation. Zero (the default) means unlimited.
func (s *Fine[T]) WithCapacity(limit int64) *Fine[T] {
	s.cap.limit = limit
	return s
}

// locate performs the shared hand-over-hand walk: it returns with pred
// and curr both locked, pred the last node with value < v and curr its
// successor (curr == s.tail or curr.value >= v). The caller must unlock
// both.
func (s *Fine[T]) locate(v T) (pred, curr *fineNode[T]) {
	pred = s.head
	pred.mu.Lock()
	curr = pred.next
	curr.mu.Lock()

	for curr != s.tail && curr.value < v {
		pred.mu.Unlock()
		pred = curr
		curr = curr.next
		curr.mu.Lock()
	}
	return pred, curr
}

// Contains reports whether v is present.
func (s *Fine[T]) Contains(v T) bool {
	pred, curr := s.locate(v)
	found := curr != s.tail && curr.value == v
	curr.mu.Unlock()
	pred.mu.Unlock()
	return found
}

// Add inserts v, returning true if it was novel.
func (s *Fine[T]) Add(v T) (bool, error) {
	pred, curr := s.locate(v)
	defer func() {
		curr.mu.Unlock()
		pred.mu.Unlock()
	}()

	if curr != s.tail && curr.value == v {
		return false, nil
	}
	if err := s.cap.reserve(s.size.Load()); err != nil {
		return false, err
	}

	n := &fineNode[T]{value: v, next: curr}
	pred.next = n
	s.size.Add(1)
	return true, nil
}

// Remove deletes one occurrence of v.
func (s *Fine[T]) Remove(v T) bool {
	pred, curr := s.locate(v)
	defer func() {
		curr.mu.Unlock()
		pred.mu.Unlock()
	}()

	if curr == s.tail || curr.value != v {
		return false
	}

	pred.next = curr.next
	s.size.Add(-1)
	// curr is unlinked; its lock is released by the deferred unlock above,
	// after which the node is unreachable and safe to collect.
	return true
}

// Size returns the number of data nodes. O(1) relaxed atomic load.
func (s *Fine[T]) Size() int {
	return int(s.size.Load())
}

// Empty reports Size() == 0.
func (s *Fine[T]) Empty() bool {
	return s.Size() == 0
}

// CheckInvariants walks the full list without taking any node lock.
// Callable only in a quiescent state (no concurrent mutators).
func (s *Fine[T]) CheckInvariants() bool {
	if s.head == nil || s.tail == nil {
		return false
	}

	count := 0
	prevVal := s.head.value
	curr := s.head.next
	for curr != s.tail {
		if curr == nil {
			return false
		}
		if curr.value <= prevVal {
			return false
		}
		prevVal = curr.value
		count++
		curr = curr.next
	}
	return int64(count) == s.size.Load()
}
