// Package bmssp is a from-scratch Go implementation of the Bounded
// Multi-Source Shortest Path algorithm (Duan, Mao, Mao, Yin & Zhang, 2025):
// single-source shortest paths over non-negative, directed graphs in
// O(m log^(2/3) n), improving on Dijkstra's O(m log n) on sparse graphs.
//
// The algorithm is a divide-and-conquer recursion: at each level it finds a
// small set of pivot vertices whose tight shortest-path subtrees are large,
// then recurses on bounded batches pulled from an approximate priority
// queue (the bounded block list) rather than a single global heap.
//
// Packages:
//
//	pathrec/  — the lexicographically ordered (length, hops, node, parent)
//	            path record used as the priority key everywhere
//	digraph/  — the frozen, dense-integer-id graph view the core operates on
//	bbl/      — the bounded block list: an ordered-set index plus D0/D1
//	            block sequences supporting insert/batch_prepend/pull
//	bmssp/    — find_pivots, the bounded base case, and the BMSSP recursion
//	            itself, plus the top-level ComputeSSSP entry point
//	constdeg/ — the constant-degree transformation (in/out-degree <= 2)
//	core/     — a general-purpose, thread-safe, string-keyed graph type used
//	            to build graphs before handing them to digraph.From
//	dijkstra/ — an external correctness oracle (binary-heap and
//	            decrease-key-heap Dijkstra), used only by tests/benchmarks
//	graphgen/ — seeded random graph generation for tests and benchmarks
//	cmd/bmsspbench/ — a CLI comparing BMSSP against both Dijkstra oracles
//
// Typical usage:
//
//	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("B", "C", 3)
//
//	dg, ids, err := digraph.From(g)
//	dist, parent, err := bmssp.ComputeSSSP(dg, 0)
//
// dist[v] is the shortest-path distance from the source to vertex v
// (pathrec.Inf if unreachable); parent[v] is the predecessor on that
// shortest path (pathrec.NoParent for the source and for unreachable
// vertices). ids[v] maps dg's dense vertex id back to the original
// core.Graph vertex ID.
package bmssp
