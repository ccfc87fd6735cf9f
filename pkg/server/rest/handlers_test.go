package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
	"rajin/parastar/pkg/server/rest"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

const (
	nyc     datastructure.NodeID = 1
	la      datastructure.NodeID = 2
	chicago datastructure.NodeID = 3
)

func testGraph() *datastructure.GraphView {
	g := datastructure.NewGraphView()
	g.AddNode(nyc, datastructure.NodeAttributes{Lat: 40.7128, Lon: -74.0060})
	g.AddNode(la, datastructure.NodeAttributes{Lat: 34.0522, Lon: -118.2437})
	g.AddNode(chicago, datastructure.NodeAttributes{Lat: 41.8781, Lon: -87.6298})
	g.AddEdge(nyc, chicago, 790)
	g.AddEdge(chicago, nyc, 790)
	g.AddEdge(la, chicago, 2015)
	g.AddEdge(chicago, la, 2015)
	return g
}

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	m := rest.NewMetrics(prometheus.NewRegistry())
	h := func(a, b heuristic.Location) float64 { return heuristic.Haversine(a, b) }
	region, err := heuristic.NewRegion(30.0, 42.0, -120.0, -85.0, 500)
	if err != nil {
		panic(err)
	}
	enhanced := heuristic.NewEnhanced(region)
	hEnhanced := func(a, b heuristic.Location) float64 { return enhanced.Estimate(a, b) }
	rest.SearchRouter(r, testGraph(), h, hEnhanced, m)
	return r
}

func doJSON(t *testing.T, r *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestShortestPathHandlerFindsRoute(t *testing.T) {
	r := newTestRouter()
	rec := doJSON(t, r, http.MethodPost, "/api/search/shortest-path", rest.ShortestPathRequest{
		StartID: int64(nyc),
		GoalID:  int64(la),
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp rest.ShortestPathResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, []datastructure.NodeID{nyc, chicago, la}, resp.Path)
	assert.NotEmpty(t, resp.Polyline)
}

func TestShortestPathHandlerAcceptsEnhancedHeuristic(t *testing.T) {
	r := newTestRouter()
	rec := doJSON(t, r, http.MethodPost, "/api/search/shortest-path", rest.ShortestPathRequest{
		StartID:   int64(nyc),
		GoalID:    int64(la),
		Heuristic: "enhanced",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp rest.ShortestPathResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
}

func TestShortestPathHandlerRejectsMissingFields(t *testing.T) {
	r := newTestRouter()
	rec := doJSON(t, r, http.MethodPost, "/api/search/shortest-path", rest.ShortestPathRequest{StartID: int64(nyc)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShortestPathParallelHandlerRunsEveryVariant(t *testing.T) {
	r := newTestRouter()

	for _, tc := range []struct{ openSet, worker string }{
		{"mutex", "spawn"}, {"mutex", "pool"}, {"fine", "spawn"}, {"fine", "pool"},
	} {
		rec := doJSON(t, r, http.MethodPost, "/api/search/shortest-path-parallel", rest.ShortestPathParallelRequest{
			StartID:    int64(nyc),
			GoalID:     int64(la),
			NumThreads: 2,
			OpenSet:    tc.openSet,
			Worker:     tc.worker,
		})
		assert.Equal(t, http.StatusOK, rec.Code, "variant %s/%s", tc.openSet, tc.worker)

		var resp rest.ShortestPathResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
	}
}

func TestShortestPathParallelHandlerRejectsBadVariant(t *testing.T) {
	r := newTestRouter()
	rec := doJSON(t, r, http.MethodPost, "/api/search/shortest-path-parallel", rest.ShortestPathParallelRequest{
		StartID:    int64(nyc),
		GoalID:     int64(la),
		NumThreads: 2,
		OpenSet:    "bogus",
		Worker:     "spawn",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListGraphHandlerReturnsAllNodes(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/search/graph", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var nodes []rest.GraphNode
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	assert.Len(t, nodes, 3)
}
