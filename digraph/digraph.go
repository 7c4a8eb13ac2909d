// Package digraph provides the frozen, dense-integer-id graph view the
// BMSSP core operates on: vertices are ids in [0, N), adjacency is stored as
// a flat slice of out-edge slices, exactly the "num_vertices() / out_edges(u)"
// contract the core recursion's components are written against.
//
// The rest of this module builds and mutates graphs through core.Graph,
// whose thread-safe, string-keyed API is the natural "driver" surface for an
// external caller. Graph in this package is the performance-critical,
// immutable counterpart produced once via From and then handed unchanged to
// every BMSSP component — no locks, no maps, just slice indexing.
package digraph

import (
	"errors"
	"fmt"

	"github.com/dkgmgo/bmssp/core"
)

// Sentinel errors for digraph construction.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to From.
	ErrNilGraph = errors.New("digraph: graph is nil")

	// ErrUnweightedGraph indicates the source graph was not constructed
	// with core.WithWeighted(), so its edge weights are not meaningful.
	ErrUnweightedGraph = errors.New("digraph: graph must be weighted")

	// ErrNegativeWeight indicates a negative edge weight was found; the
	// core requires non-negative weights throughout.
	ErrNegativeWeight = errors.New("digraph: negative edge weight encountered")
)

// Edge is a single out-edge: destination vertex id and non-negative weight.
type Edge struct {
	To     int
	Weight float64
}

// Graph is a dense-id, adjacency-sliced directed graph. Once built via From,
// it is never mutated; every BMSSP component treats it as read-only.
type Graph struct {
	adj [][]Edge
}

// NumVertices returns N, the number of vertices, ids [0, N).
func (g *Graph) NumVertices() int {
	return len(g.adj)
}

// OutEdges returns the out-edges of vertex u in the order they were added.
// The returned slice must be treated as read-only by callers.
func (g *Graph) OutEdges(u int) []Edge {
	return g.adj[u]
}

// New builds an empty Graph over n vertices with no edges. Used by
// components (notably constdeg) that construct a Graph directly rather than
// deriving one from a core.Graph.
func New(n int) *Graph {
	return &Graph{adj: make([][]Edge, n)}
}

// AddEdge appends a directed edge u->v of the given weight. It does not
// check for duplicates; multiple parallel edges are legal here; the caller
// is responsible for weight non-negativity.
func (g *Graph) AddEdge(u, v int, w float64) {
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
}

// From freezes a *core.Graph into a dense-id Graph. Vertex ids are assigned
// by g.Vertices()'s sorted order, for the same determinism reason
// core.Graph.Edges() documents a stable sort: repeated calls on an
// unmodified graph produce bit-identical dense ids. The second return value
// maps dense id -> original core.Graph vertex ID, used to translate results
// back to the caller's vocabulary.
//
// From requires a weighted graph with only non-negative edge weights; it
// does not require the graph to be directed — undirected edges are already
// mirrored in both adjacency directions by core.Graph.AddEdge, so From simply
// walks core.Graph.Edges() and honors each edge's own Directed flag.
func From(g *core.Graph) (*Graph, []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}

	ids := g.Vertices() // already sorted ascending, see core.Graph.Vertices
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	out := New(len(ids))
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		u, v := index[e.From], index[e.To]
		out.AddEdge(u, v, e.Weight)
		if !e.Directed && u != v {
			out.AddEdge(v, u, e.Weight)
		}
	}

	return out, ids, nil
}
