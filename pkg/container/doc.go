// Package container implements the sorted-linked-list concurrent
// containers that back the A* open-set: a Set with coarse-grained
// (readers-writer lock) and fine-grained (hand-over-hand per-node mutex)
// locking, and a fine-grained-locking Priority Queue with FIFO
// tie-breaking.
//
// Every container keeps two permanent sentinel nodes, head and tail, so
// traversal never needs a nil check: head always holds the type's minimum
// bound and tail its maximum, and no data node ever precedes head or
// follows tail.
package container
