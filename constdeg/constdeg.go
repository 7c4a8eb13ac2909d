// Package constdeg implements the constant-degree transformation of §4.H:
// rewriting an arbitrary non-negative digraph into one where every vertex
// has in-degree and out-degree at most 2, a precondition the BMSSP
// recursion's complexity bound relies on.
//
// Ported from original_source/utils.cpp's constant_degree_transformation,
// adapted from its string-label, map-keyed revision to the dense-integer-id
// model the rest of this module uses: synthetic nodes are allocated as
// trailing ids starting at N rather than built from "x_"/"y_" label
// concatenation, and the id of each original vertex is reused as one member
// of its own cycle rather than retired, so vertex ids below N keep meaning
// unaltered — the distances BMSSP computes on G' are directly comparable to
// G's, vertex-id for vertex-id, with no separate translation table.
package constdeg

import "github.com/dkgmgo/bmssp/digraph"

type edgeRef struct {
	id int
	u  int
	v  int
	w  float64
}

// Transform rewrites g into an equivalent graph g' with in/out-degree <= 2
// at every vertex, returning (g', N') with N' >= g.NumVertices(). Vertex ids
// in [0, g.NumVertices()) keep their original meaning in g': shortest-path
// distances between them are unchanged by the transformation.
//
// For each vertex s whose out-degree exceeds 2, in-degree exceeds 2, or
// whose combined degree exceeds 3, Transform allocates one send node per
// outgoing edge and one receive node per incoming edge, threads them into a
// single zero-weight directed cycle, and reroutes s's original edges onto
// the send/receive nodes representing them. The first node of that cycle
// reuses s's own id, so no bookkeeping is required to relate G and G' on
// the vertices both graphs share.
func Transform(g *digraph.Graph) (*digraph.Graph, int) {
	n := g.NumVertices()

	edges := make([]edgeRef, 0)
	outgoing := make([][]int, n)
	incoming := make([][]int, n)
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			id := len(edges)
			edges = append(edges, edgeRef{id: id, u: u, v: e.To, w: e.Weight})
			outgoing[u] = append(outgoing[u], id)
			incoming[e.To] = append(incoming[e.To], id)
		}
	}

	decompose := make([]bool, n)
	for s := 0; s < n; s++ {
		out, in := len(outgoing[s]), len(incoming[s])
		if out > 2 || in > 2 || out+in > 3 {
			decompose[s] = true
		}
	}

	sendNode := make(map[int]int, len(edges))
	recvNode := make(map[int]int, len(edges))
	cycles := make([][]int, 0)
	next := n

	for s := 0; s < n; s++ {
		if !decompose[s] {
			continue
		}

		cycle := make([]int, 0, len(outgoing[s])+len(incoming[s]))
		reusedOriginal := false
		allocate := func() int {
			if !reusedOriginal {
				reusedOriginal = true
				return s
			}
			id := next
			next++
			return id
		}

		for _, eid := range outgoing[s] {
			id := allocate()
			sendNode[eid] = id
			cycle = append(cycle, id)
		}
		for _, eid := range incoming[s] {
			id := allocate()
			recvNode[eid] = id
			cycle = append(cycle, id)
		}
		cycles = append(cycles, cycle)
	}

	out := digraph.New(next)
	for _, cycle := range cycles {
		k := len(cycle)
		for i := 0; i < k; i++ {
			out.AddEdge(cycle[i], cycle[(i+1)%k], 0)
		}
	}
	for _, e := range edges {
		from := e.u
		if decompose[e.u] {
			from = sendNode[e.id]
		}
		to := e.v
		if decompose[e.v] {
			to = recvNode[e.id]
		}
		out.AddEdge(from, to, e.w)
	}

	return out, next
}
