package search

import (
	"log"
	"sync"

	"rajin/parastar/domain"
	"rajin/parastar/pkg/concurrent"
	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
)

// OpenSetKind selects which open-set implementation a parallel search
// uses.
type OpenSetKind int

const (
	// MutexStdPQ is a standard binary heap protected by one mutex.
	MutexStdPQ OpenSetKind = iota
	// FineLockPQ is container.PriorityQueue's hand-over-hand locking.
	FineLockPQ
)

// WorkerKind selects how a parallel search provisions the goroutines
// that relax one expansion's outgoing edges.
type WorkerKind int

const (
	// SpawnEach launches fresh goroutines per expansion, joined before
	// the next pop.
	SpawnEach WorkerKind = iota
	// PersistentPool submits each expansion's chunks to a long-lived
	// worker pool.
	PersistentPool
)

// SearchParallel runs one of the four parallel A* variants obtained by
// crossing osKind and wKind. The outer pop/goal-check/fan-out loop is
// serial; only the per-edge relaxation within one expansion is
// parallelized across numThreads chunks. Parallel relaxation means two
// workers can race to improve the same neighbor's score, so the result
// is not guaranteed optimal: callers should only rely on it being a
// valid start-to-goal walk (or nil, if no path was found) and on
// termination.
func SearchParallel(
	graph *datastructure.GraphView,
	start, goal NodeID,
	h heuristic.Func,
	numThreads int,
	osKind OpenSetKind,
	wKind WorkerKind,
) ([]NodeID, error) {
	if numThreads < 1 {
		numThreads = 1
	}

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

	var open openSet
	switch osKind {
	case FineLockPQ:
		open = newFineLockPQ()
	default:
		open = newMutexStdPQ()
	}

	gScore := newScoreMap(start)
	cameFrom := newParentMap()

	var pool *concurrent.Pool
	if wKind == PersistentPool {
		pool = concurrent.NewPool(numThreads)
		defer pool.Shutdown()
	}

	open.push(frontierItem{Node: start, GScore: 0, FScore: h(heuristic.Location(startAttrs), heuristic.Location(goalAttrs))})

	for {
		current, ok := open.pop()
		if !ok {
			return nil, nil
		}
		if current.Node == goal {
			return reconstructPath(cameFrom.snapshot(), start, goal), nil
		}

		edges, _ := graph.Neighbours(current.Node)
		if len(edges) == 0 {
			continue
		}

		tasks := buildTasks(graph, h, current, edges, heuristic.Location(goalAttrs), numThreads, gScore, cameFrom, open)

		switch wKind {
		case PersistentPool:
			if err := pool.SubmitAndWait(tasks); err != nil {
				return nil, err
			}
		default:
			runSpawnEach(tasks)
		}
	}
}

// buildTasks splits edges into ceil(len(edges)/numThreads)-sized
// contiguous chunks (the last chunk may be shorter) and returns one task
// per chunk.
func buildTasks(
	graph *datastructure.GraphView,
	h heuristic.Func,
	current frontierItem,
	edges []datastructure.Edge,
	goalAttrs heuristic.Location,
	numThreads int,
	gScore *scoreMap,
	cameFrom *parentMap,
	open openSet,
) []func() {
	chunkSize := (len(edges) + numThreads - 1) / numThreads
	if chunkSize < 1 {
		chunkSize = 1
	}

	var tasks []func()
	for start := 0; start < len(edges); start += chunkSize {
		end := start + chunkSize
		if end > len(edges) {
			end = len(edges)
		}
		chunk := edges[start:end]
		tasks = append(tasks, func() {
			for _, edge := range chunk {
				relax(graph, h, current, edge, goalAttrs, gScore, cameFrom, open)
			}
		})
	}
	return tasks
}

// relax implements the per-edge worker protocol: compute the tentative
// g-score locally, check-and-update g_score under its mutex, and if it
// improved, update came_from and push the candidate onto the open-set.
func relax(
	graph *datastructure.GraphView,
	h heuristic.Func,
	current frontierItem,
	edge datastructure.Edge,
	goalAttrs heuristic.Location,
	gScore *scoreMap,
	cameFrom *parentMap,
	open openSet,
) {
	neighborAttrs, ok := graph.Node(edge.To)
	if !ok {
		log.Printf("parastar: inconsistent graph: edge %v->%v targets unknown node, skipping", current.Node, edge.To)
		return
	}

	tentativeG := current.GScore + edge.Weight
	if !gScore.updateIfBetter(edge.To, tentativeG) {
		return
	}

	cameFrom.set(edge.To, current.Node)
	f := tentativeG + h(heuristic.Location(neighborAttrs), goalAttrs)
	open.push(frontierItem{Node: edge.To, GScore: tentativeG, FScore: f})
}

// runSpawnEach is the SpawnEach worker-provisioning option: one goroutine
// per chunk, joined before the caller proceeds.
func runSpawnEach(tasks []func()) {
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		task := task
		go func() {
			defer wg.Done()
			task()
		}()
	}
	wg.Wait()
}
