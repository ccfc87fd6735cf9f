package datastructure

import "github.com/twpayne/go-polyline"

// NodeID identifies a node in a GraphView.
type NodeID = int64

// NodeAttributes holds the per-node metadata the search engine and its
// heuristics need: just coordinates.
type NodeAttributes struct {
	Lat float64
	Lon float64
}

// Edge is one entry of a node's ordered outgoing-edge sequence
// (node_id → ordered sequence of (target_node_id, weight)).
type Edge struct {
	To     NodeID
	Weight float64
}

// GraphView is the read-only adjacency mapping plus node-attribute
// mapping the search engine consumes. Both mappings are immutable during
// a search, so GraphView needs no locking: Node and Neighbours are safe
// for arbitrary concurrent readers once construction (AddNode/AddEdge)
// has finished.
type GraphView struct {
	nodes     map[NodeID]NodeAttributes
	adjacency map[NodeID][]Edge
}

// NewGraphView builds an empty graph view. Call AddNode/AddEdge to
// populate it before handing it to the search engine; a GraphView is not
// safe for concurrent mutation, only concurrent reads once built.
func NewGraphView() *GraphView {
	return &GraphView{
		nodes:     make(map[NodeID]NodeAttributes),
		adjacency: make(map[NodeID][]Edge),
	}
}

// AddNode registers a node's coordinates, overwriting any prior entry
// for the same id.
func (g *GraphView) AddNode(id NodeID, attrs NodeAttributes) {
	g.nodes[id] = attrs
}

// AddEdge appends a directed edge from `from`, preserving insertion
// order: callers that rely on edge ordering get back exactly the order
// they inserted in.
func (g *GraphView) AddEdge(from NodeID, to NodeID, weight float64) {
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
}

// Node returns id's attributes, and whether id is present.
func (g *GraphView) Node(id NodeID) (NodeAttributes, bool) {
	attrs, ok := g.nodes[id]
	return attrs, ok
}

// Neighbours returns id's outgoing edges in insertion order, and whether
// id is present at all (an id with no outgoing edges but present in the
// node mapping still returns true, with a nil/empty slice).
func (g *GraphView) Neighbours(id NodeID) ([]Edge, bool) {
	if _, ok := g.nodes[id]; !ok {
		return nil, false
	}
	return g.adjacency[id], true
}

// NodeCount reports how many nodes are registered.
func (g *GraphView) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns the full id-to-attributes mapping, for callers that need
// to enumerate the graph (e.g. a demo listing endpoint). The returned map
// is not a defensive copy; callers must not mutate it.
func (g *GraphView) Nodes() map[NodeID]NodeAttributes {
	return g.nodes
}

// EncodePolyline renders a sequence of node attributes as a Google
// polyline string, for presenting a found path over HTTP.
func EncodePolyline(path []NodeAttributes) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
