// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge, directed per the graph's default orientation.
//
//   - If Weighted()==false and weight!=0, this returns ErrBadWeight.
//   - If the graph was built without WithLoops and from==to, this returns
//     ErrLoopNotAllowed.
//   - A second edge between the same ordered pair is rejected with
//     ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if inner := g.adjacencyList[from][to]; len(inner) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from->to exists.
//
// Works for undirected graphs too, since AddEdge mirrors adjacency.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns a pointer to the Edge with the given edgeID if it exists,
// or ErrEdgeNotFound if no such edge is present. The returned *Edge must be
// treated as read-only by callers.
//
// Complexity: O(1) average time.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic
// order), which digraph.From relies on for a repeatable out-edge order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically,
// producing "e" + decimal digits with no locale/time/randomness.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
