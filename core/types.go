// Package core declares the Graph type, its construction options, and
// the sentinel errors shared by all core operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeKey indicates a NodeKey that was not built by
	// Int, Pair, or Triple (i.e. the zero value).
	ErrInvalidNodeKey = errors.New("core: invalid node key")

	// ErrBadCapacity indicates a non-positive node capacity passed to NewGraph.
	ErrBadCapacity = errors.New("core: node capacity must be positive")

	// ErrCapacityExceeded indicates an operation would assign an id
	// beyond the graph's declared node capacity.
	ErrCapacityExceeded = errors.New("core: node capacity exceeded")

	// ErrIDOutOfRange indicates an adjacency read for an id outside [0, capacity).
	ErrIDOutOfRange = errors.New("core: node id out of range")
)

// Arc is one entry of a vertex's adjacency sequence: the dense id of
// the neighbor and the weight recorded on the edge.
type Arc struct {
	// To is the dense id of the neighboring vertex.
	To int

	// Weight is the weight the edge was inserted with. Breadth-first
	// traversal stores but ignores it; other consumers may not.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge directedness for the whole graph
// (true = directed, false = undirected with mirrored arcs).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a fixed-capacity adjacency structure over dense node ids.
//
// Vertices are addressed by NodeKey and mapped to ids by the owned
// IdentityMap; adjacency is a slice of Arc sequences indexed by id.
// Edges are append-only: repeated AddEdge calls with the same endpoints
// produce parallel arcs.
type Graph struct {
	capacity int  // declared upper bound on distinct node ids
	directed bool // false mirrors every inserted arc

	ids       *IdentityMap
	adj       [][]Arc // adj[id] holds arcs in insertion order
	edgeCount int     // logical edges (a mirrored pair counts once)
}

// NewGraph creates an empty Graph able to hold up to nodeCapacity
// distinct vertices. Graphs are directed by default; pass
// WithDirected(false) for undirected semantics.
// Returns ErrBadCapacity when nodeCapacity <= 0.
// Complexity: O(nodeCapacity) for the adjacency table allocation.
func NewGraph(nodeCapacity int, opts ...GraphOption) (*Graph, error) {
	if nodeCapacity <= 0 {
		return nil, ErrBadCapacity
	}
	g := &Graph{
		capacity: nodeCapacity,
		directed: true,
		ids:      NewIdentityMap(),
		adj:      make([][]Arc, nodeCapacity),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
