package search_test

import (
	"testing"

	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
	"rajin/parastar/pkg/search"

	"github.com/stretchr/testify/assert"
)

func isValidWalk(g *datastructure.GraphView, path []datastructure.NodeID, start, goal datastructure.NodeID) bool {
	if len(path) == 0 {
		return true // "no path found" is a valid result
	}
	if path[0] != start || path[len(path)-1] != goal {
		return false
	}
	for i := 0; i+1 < len(path); i++ {
		edges, ok := g.Neighbours(path[i])
		if !ok {
			return false
		}
		found := false
		for _, e := range edges {
			if e.To == path[i+1] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestSearchParallelAllVariantsFindValidPath(t *testing.T) {
	g := triangleGraph()
	h := haversineHeuristic(g)

	variants := []struct {
		name string
		os   search.OpenSetKind
		wk   search.WorkerKind
	}{
		{"MutexStdPQ/SpawnEach", search.MutexStdPQ, search.SpawnEach},
		{"MutexStdPQ/PersistentPool", search.MutexStdPQ, search.PersistentPool},
		{"FineLockPQ/SpawnEach", search.FineLockPQ, search.SpawnEach},
		{"FineLockPQ/PersistentPool", search.FineLockPQ, search.PersistentPool},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			path, err := search.SearchParallel(g, nyc, la, h, 3, v.os, v.wk)
			assert.NoError(t, err)
			assert.True(t, isValidWalk(g, path, nyc, la), "path %v is not a valid walk", path)
			assert.NotEmpty(t, path)
		})
	}
}

func TestSearchParallelStartEqualsGoal(t *testing.T) {
	g := triangleGraph()
	path, err := search.SearchParallel(g, nyc, nyc, haversineHeuristic(g), 4, search.FineLockPQ, search.PersistentPool)
	assert.NoError(t, err)
	assert.Equal(t, []datastructure.NodeID{nyc}, path)
}

func TestSearchParallelUnknownNode(t *testing.T) {
	g := triangleGraph()
	_, err := search.SearchParallel(g, nyc, 9999, haversineHeuristic(g), 4, search.MutexStdPQ, search.SpawnEach)
	assert.Error(t, err)
}

func TestSearchParallelUnreachableGoal(t *testing.T) {
	g := datastructure.NewGraphView()
	g.AddNode(nyc, datastructure.NodeAttributes{Lat: 40.7128, Lon: -74.0060})
	g.AddNode(la, datastructure.NodeAttributes{Lat: 34.0522, Lon: -118.2437})

	path, err := search.SearchParallel(g, nyc, la, haversineHeuristic(g), 4, search.FineLockPQ, search.SpawnEach)
	assert.NoError(t, err)
	assert.Empty(t, path)
}

// TestSearchParallelLargerGraphTerminates exercises a bigger grid graph
// through each of the four variants in turn, checking only termination and
// walk validity, since the parallel variants make no optimality
// guarantee.
func TestSearchParallelLargerGraphTerminates(t *testing.T) {
	const side = 8
	g := datastructure.NewGraphView()
	id := func(x, y int) datastructure.NodeID { return datastructure.NodeID(y*side + x) }

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			g.AddNode(id(x, y), datastructure.NodeAttributes{
				Lat: float64(y) * 0.01,
				Lon: float64(x) * 0.01,
			})
		}
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if x+1 < side {
				g.AddEdge(id(x, y), id(x+1, y), 1)
				g.AddEdge(id(x+1, y), id(x, y), 1)
			}
			if y+1 < side {
				g.AddEdge(id(x, y), id(x, y+1), 1)
				g.AddEdge(id(x, y+1), id(x, y), 1)
			}
		}
	}

	start, goal := id(0, 0), id(side-1, side-1)
	h := haversineHeuristic(g)

	variants := []struct {
		os search.OpenSetKind
		wk search.WorkerKind
	}{
		{search.MutexStdPQ, search.SpawnEach},
		{search.MutexStdPQ, search.PersistentPool},
		{search.FineLockPQ, search.SpawnEach},
		{search.FineLockPQ, search.PersistentPool},
	}

	for _, v := range variants {
		path, err := search.SearchParallel(g, start, goal, h, 4, v.os, v.wk)
		assert.NoError(t, err)
		assert.True(t, isValidWalk(g, path, start, goal))
	}
}

func TestHeuristicIsPureFunctionOfAttributes(t *testing.T) {
	a := heuristic.Location{Lat: 1, Lon: 1}
	b := heuristic.Location{Lat: 2, Lon: 2}
	assert.Equal(t, heuristic.Haversine(a, b), heuristic.Haversine(a, b))
}
