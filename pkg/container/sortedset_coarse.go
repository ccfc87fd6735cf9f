package container

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// coarseNode is a singly linked list cell. Coarse never locks a node
// directly; the whole list is protected by Coarse.mu.
type coarseNode[T constraints.Ordered] struct {
	value T
	next  *coarseNode[T]
}

// Coarse is a sorted singly linked Set guarded by a single
// readers-writer lock covering the whole list and its atomic size
// counter. Readers (Contains) take the shared lock; writers (Add,
// Remove) take the exclusive lock, so concurrent Contains calls do not
// serialize against each other, only against writers.
type Coarse[T constraints.Ordered] struct {
	mu   sync.RWMutex
	head *coarseNode[T]
	tail *coarseNode[T]
	size atomic.Int64
	cap  capacity
}

// NewCoarse builds an empty Set whose sentinels hold min and max — the
// statically known least and greatest values of T for this instance.
// No value ever added to the set may compare less than min or greater
// than max.
func NewCoarse[T constraints.Ordered](min, max T) *Coarse[T] {
	tail := &coarseNode[T]{value: max}
	head := &coarseNode[T]{value: min, next: tail}
	return &Coarse[T]{head: head, tail: tail}
}

// WithCapacity bounds the number of data nodes the set may hold; Add
// beyond that bound fails with ErrAllocation. Zero (the default) means
// unlimited.
func (s *Coarse[T]) WithCapacity(limit int64) *Coarse[T] {
	s.cap.limit = limit
	return s
}

// Contains reports whether v is present. Safe for concurrent use with
// any other operation.
func (s *Coarse[T]) Contains(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	curr := s.head.next
	for curr != s.tail && curr.value < v {
		curr = curr.next
	}
	return curr != s.tail && curr.value == v
}

// Add inserts v, returning true if it was novel and false if v was
// already present (the set is unchanged in that case).
func (s *Coarse[T]) Add(v T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pred := s.head
	curr := s.head.next
	for curr != s.tail && curr.value < v {
		pred = curr
		curr = curr.next
	}
	if curr != s.tail && curr.value == v {
		return false, nil
	}
	if err := s.cap.reserve(s.size.Load()); err != nil {
		return false, err
	}

	n := &coarseNode[T]{value: v, next: curr}
	pred.next = n
	s.size.Add(1)
	return true, nil
}

// Remove deletes one occurrence of v, reporting whether anything was
// removed.
func (s *Coarse[T]) Remove(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pred := s.head
	curr := s.head.next
	for curr != s.tail && curr.value < v {
		pred = curr
		curr = curr.next
	}
	if curr == s.tail || curr.value != v {
		return false
	}

	pred.next = curr.next
	s.size.Add(-1)
	return true
}

// Size returns the number of data nodes. O(1); a relaxed atomic load, so
// a concurrent caller observes a value consistent with some
// linearization but not necessarily the linearization of its own most
// recent operation.
func (s *Coarse[T]) Size() int {
	return int(s.size.Load())
}

// Empty reports Size() == 0.
func (s *Coarse[T]) Empty() bool {
	return s.Size() == 0
}

// CheckInvariants walks the list under the exclusive lock and verifies
// strict increase, absence of duplicates, sentinel presence, and that
// the atomic counter matches the traversal count. Callable only in a
// quiescent state.
func (s *Coarse[T]) CheckInvariants() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.head == nil || s.tail == nil {
		return false
	}

	count := 0
	curr := s.head.next
	for curr != s.tail {
		if curr.next == nil {
			return false
		}
		if curr.next != s.tail && curr.next.value <= curr.value {
			return false
		}
		count++
		curr = curr.next
	}
	return int64(count) == s.size.Load()
}
