// Package search implements the A* search engine: one sequential variant
// and four parallel variants that combine a choice of open-set
// (mutex-guarded container/heap, or container.PriorityQueue's
// fine-grained hand-over-hand locking) with a choice of worker
// provisioning (spawn-per-expansion, or a persistent pool).
//
// The outer pop/goal-check/fan-out loop is always serial; only the
// per-edge relaxation within one expansion is parallelized. That
// parallel relaxation is why the parallel variants, unlike the
// sequential one, do not preserve A*'s optimality guarantee.
package search

import "rajin/parastar/pkg/datastructure"

// NodeID is the graph's node identifier type.
type NodeID = datastructure.NodeID

// frontierItem is one open-set entry.
type frontierItem struct {
	Node   NodeID
	GScore float64
	FScore float64
}
