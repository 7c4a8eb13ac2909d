package core_test

import (
	"fmt"

	"github.com/dkgmgo/bmssp/core"
)

// ExampleGraph demonstrates assembling a small weighted directed graph with
// core.Graph before handing it to digraph.From.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	g.AddEdge("v0", "v1", 4)
	g.AddEdge("v1", "v2", 3)
	g.AddEdge("v0", "v2", 10)

	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 3 3
}

// ExampleGraph_undirected shows how an undirected edge mirrors into the
// adjacency of both endpoints.
func ExampleGraph_undirected() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("v0", "v1", 1)

	fmt.Println(g.HasEdge("v0", "v1"), g.HasEdge("v1", "v0"))
	// Output: true true
}
