package rest

import (
	"errors"
	"net/http"

	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
	"rajin/parastar/pkg/search"
	"rajin/parastar/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// NavigationHandler serves the demo search API against a single in-memory
// graph view, exercising every open-set/worker-provisioning combination
// from the parallel A* engine. enhanced is optional: when nil, a request
// asking for the "enhanced" heuristic falls back to the plain one.
type NavigationHandler struct {
	graph    *datastructure.GraphView
	h        heuristic.Func
	enhanced heuristic.Func
	m        *Metrics
}

// SearchRouter mounts the demo search endpoints onto r. enhanced may be
// nil if no region-biased heuristic is configured for this graph.
func SearchRouter(r *chi.Mux, graph *datastructure.GraphView, h heuristic.Func, enhanced heuristic.Func, m *Metrics) {
	handler := &NavigationHandler{graph: graph, h: h, enhanced: enhanced, m: m}

	r.Route("/api/search", func(r chi.Router) {
		r.Post("/shortest-path", handler.shortestPath)
		r.Post("/shortest-path-parallel", handler.shortestPathParallel)
		r.Get("/graph", handler.listGraph)
		r.Get("/hello", handler.Hello)
	})
}

// pick returns the region-biased heuristic when name is "enhanced" and one
// is configured, otherwise the handler's default heuristic.
func (h *NavigationHandler) pick(name string) heuristic.Func {
	if name == "enhanced" && h.enhanced != nil {
		return h.enhanced
	}
	return h.h
}

// ShortestPathRequest model info
//
//	@Description	request body for a sequential shortest-path query
type ShortestPathRequest struct {
	StartID   int64  `json:"start_id" validate:"required"`
	GoalID    int64  `json:"goal_id" validate:"required"`
	Heuristic string `json:"heuristic" validate:"omitempty,oneof=haversine enhanced"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	if s.StartID == 0 || s.GoalID == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathParallelRequest model info
//
//	@Description	request body for a parallel shortest-path query
type ShortestPathParallelRequest struct {
	StartID    int64  `json:"start_id" validate:"required"`
	GoalID     int64  `json:"goal_id" validate:"required"`
	NumThreads int    `json:"num_threads" validate:"required,gte=1,lte=64"`
	OpenSet    string `json:"open_set" validate:"required,oneof=mutex fine"`
	Worker     string `json:"worker" validate:"required,oneof=spawn pool"`
	Heuristic  string `json:"heuristic" validate:"omitempty,oneof=haversine enhanced"`
}

func (s *ShortestPathParallelRequest) Bind(r *http.Request) error {
	if s.StartID == 0 || s.GoalID == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// ShortestPathResponse model info
//
//	@Description	response body for a shortest-path query
type ShortestPathResponse struct {
	Path     []datastructure.NodeID `json:"path"`
	Polyline string                 `json:"polyline,omitempty"`
	Distance float64                `json:"distance,omitempty"`
	Found    bool                   `json:"found"`
	Variant  string                 `json:"variant"`
}

func (h *NavigationHandler) newShortestPathResponse(path []datastructure.NodeID, variant string) *ShortestPathResponse {
	coords := make([]datastructure.NodeAttributes, 0, len(path))
	for _, id := range path {
		if attrs, ok := h.graph.Node(id); ok {
			coords = append(coords, attrs)
		}
	}
	return &ShortestPathResponse{
		Path:     path,
		Polyline: datastructure.EncodePolyline(coords),
		Distance: util.RoundFloat(pathDistance(h.graph, path), 2),
		Found:    len(path) > 0,
		Variant:  variant,
	}
}

// pathDistance sums the edge weights actually traversed by path, looking
// each hop up in the graph's adjacency rather than trusting caller input.
func pathDistance(graph *datastructure.GraphView, path []datastructure.NodeID) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		edges, ok := graph.Neighbours(path[i])
		if !ok {
			continue
		}
		for _, e := range edges {
			if e.To == path[i+1] {
				total += e.Weight
				break
			}
		}
	}
	return total
}

func bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}

	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		render.Render(w, r, ErrValidation(err, translateError(err, trans)))
		return false
	}
	return true
}

// shortestPath
//
//	@Summary		sequential shortest-path query
//	@Description	runs the sequential A* search between two node ids in the demo graph
//	@Tags			search
//	@Param			body	body	ShortestPathRequest	true	"start and goal node ids, and optional heuristic selection"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/search/shortest-path [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	h.m.SearchCount.WithLabelValues("sequential").Inc()
	path, err := search.Search(h.graph, datastructure.NodeID(data.StartID), datastructure.NodeID(data.GoalID), h.pick(data.Heuristic))
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newShortestPathResponse(path, "sequential"))
}

// shortestPathParallel
//
//	@Summary		parallel shortest-path query
//	@Description	runs one of the four parallel A* variants between two node ids in the demo graph
//	@Tags			search
//	@Param			body	body	ShortestPathParallelRequest	true	"start/goal node ids, worker count, and variant selection"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/search/shortest-path-parallel [post]
//	@Success		200	{object}	ShortestPathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) shortestPathParallel(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathParallelRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	osKind := search.MutexStdPQ
	if data.OpenSet == "fine" {
		osKind = search.FineLockPQ
	}
	wKind := search.SpawnEach
	if data.Worker == "pool" {
		wKind = search.PersistentPool
	}
	variant := data.OpenSet + "/" + data.Worker

	h.m.SearchCount.WithLabelValues(variant).Inc()
	path, err := search.SearchParallel(h.graph, datastructure.NodeID(data.StartID), datastructure.NodeID(data.GoalID), h.pick(data.Heuristic), data.NumThreads, osKind, wKind)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newShortestPathResponse(path, variant))
}

// GraphNode model info
//
//	@Description	a single node of the demo graph
type GraphNode struct {
	ID  datastructure.NodeID `json:"id"`
	Lat float64              `json:"lat"`
	Lon float64              `json:"lon"`
}

// listGraph
//
//	@Summary		list demo graph nodes
//	@Tags			search
//	@Produce		application/json
//	@Router			/search/graph [get]
//	@Success		200	{array}	GraphNode
func (h *NavigationHandler) listGraph(w http.ResponseWriter, r *http.Request) {
	nodes := h.graph.Nodes()
	out := make([]GraphNode, 0, len(nodes))
	for id, attrs := range nodes {
		out = append(out, GraphNode{ID: id, Lat: attrs.Lat, Lon: attrs.Lon})
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, out)
}

func (h *NavigationHandler) Hello(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello, World!")
}
