package main

import (
	"flag"
	"log"
	"net/http"

	_ "rajin/parastar/cmd/parastar-demo/docs"
	"rajin/parastar/pkg/datastructure"
	"rajin/parastar/pkg/heuristic"
	"rajin/parastar/pkg/server/rest"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"
)

var listenAddr = flag.String("listenaddr", ":5000", "server listen address")

//	@title			parastar demo API
//	@version		1.0
//	@description	in-memory parallel A* search engine, exposed over HTTP for demonstration

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	graph := demoGraph()
	h := func(a, b heuristic.Location) float64 { return heuristic.Haversine(a, b) }

	gulfRegion, err := heuristic.NewRegion(29.0, 34.0, -96.0, -84.0, 300)
	if err != nil {
		log.Fatalf("demo penalty region: %v", err)
	}
	enhanced := heuristic.NewEnhanced(gulfRegion)
	hEnhanced := func(a, b heuristic.Location) float64 { return enhanced.Estimate(a, b) }

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(rest.PromeHttpMiddleware(m))
	r.Mount("/debug", middleware.Profiler())
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"),
	))

	rest.SearchRouter(r, graph, h, hEnhanced, m)

	log.Printf("demo graph loaded: %d nodes", graph.NodeCount())
	log.Printf("server started at %s\n", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}

// demoGraph is a small fixed road-trip graph (major US cities) used to
// exercise the search engine without needing an external data file.
func demoGraph() *datastructure.GraphView {
	const (
		nyc     datastructure.NodeID = 1
		la      datastructure.NodeID = 2
		chicago datastructure.NodeID = 3
		denver  datastructure.NodeID = 4
		houston datastructure.NodeID = 5
		atlanta datastructure.NodeID = 6
	)

	g := datastructure.NewGraphView()
	g.AddNode(nyc, datastructure.NodeAttributes{Lat: 40.7128, Lon: -74.0060})
	g.AddNode(la, datastructure.NodeAttributes{Lat: 34.0522, Lon: -118.2437})
	g.AddNode(chicago, datastructure.NodeAttributes{Lat: 41.8781, Lon: -87.6298})
	g.AddNode(denver, datastructure.NodeAttributes{Lat: 39.7392, Lon: -104.9903})
	g.AddNode(houston, datastructure.NodeAttributes{Lat: 29.7604, Lon: -95.3698})
	g.AddNode(atlanta, datastructure.NodeAttributes{Lat: 33.7490, Lon: -84.3880})

	edges := []struct {
		from, to datastructure.NodeID
		weight   float64
	}{
		{nyc, chicago, 790}, {chicago, nyc, 790},
		{nyc, atlanta, 870}, {atlanta, nyc, 870},
		{chicago, denver, 920}, {denver, chicago, 920},
		{chicago, houston, 1080}, {houston, chicago, 1080},
		{denver, la, 1020}, {la, denver, 1020},
		{atlanta, houston, 790}, {houston, atlanta, 790},
		{houston, la, 1550}, {la, houston, 1550},
	}
	for _, e := range edges {
		g.AddEdge(e.from, e.to, e.weight)
	}
	return g
}
