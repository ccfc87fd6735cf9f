package search

import (
	"container/heap"
	"log"

	"rajin/parastar/domain"
	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
	"rajin/parastar/pkg/util"
)

// Search runs the classical, single-threaded A* search described in spec
// §4.7.1: pop the minimum-f node, relax its outgoing edges, and repeat
// until the goal is popped or the open-set empties. It fails with
// ErrUnknownNode if either endpoint is absent from graph, and returns a
// nil path (not an error) when the goal is unreachable.
func Search(graph *datastructure.GraphView, start, goal NodeID, h heuristic.Func) ([]NodeID, error) {
	startAttrs, ok := graph.Node(start)
	if !ok {
		return nil, domain.WrapErrorf(domain.ErrUnknownNode, domain.ErrUnknownNode, "start node %v", start)
	}
	goalAttrs, ok := graph.Node(goal)
	if !ok {
		return nil, domain.WrapErrorf(domain.ErrUnknownNode, domain.ErrUnknownNode, "goal node %v", goal)
	}

	if start == goal {
		return []NodeID{start}, nil
	}

	gScore := map[NodeID]float64{start: 0}
	cameFrom := map[NodeID]NodeID{}
	closed := map[NodeID]bool{}

	open := &minHeap{{Node: start, GScore: 0, FScore: h(heuristic.Location(startAttrs), heuristic.Location(goalAttrs))}}
	heap.Init(open)

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem)
		if closed[current.Node] {
			continue
		}
		closed[current.Node] = true

		if current.Node == goal {
			return reconstructPath(cameFrom, start, goal), nil
		}

		edges, _ := graph.Neighbours(current.Node)
		for _, edge := range edges {
			neighborAttrs, ok := graph.Node(edge.To)
			if !ok {
				log.Printf("parastar: inconsistent graph: edge %v->%v targets unknown node, skipping", current.Node, edge.To)
				continue
			}
			if closed[edge.To] {
				continue
			}

			tentativeG := current.GScore + edge.Weight
			incumbent, known := gScore[edge.To]
			if known && tentativeG >= incumbent {
				continue
			}

			gScore[edge.To] = tentativeG
			cameFrom[edge.To] = current.Node
			heap.Push(open, frontierItem{
				Node:   edge.To,
				GScore: tentativeG,
				FScore: tentativeG + h(heuristic.Location(neighborAttrs), heuristic.Location(goalAttrs)),
			})
		}
	}

	return nil, nil
}

// reconstructPath walks came_from from goal back to start and reverses
// it, so the result always starts at start and ends at goal.
func reconstructPath(cameFrom map[NodeID]NodeID, start, goal NodeID) []NodeID {
	path := []NodeID{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	util.ReverseG(path)
	return path
}
