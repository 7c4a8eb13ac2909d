package core_test

import (
	"fmt"
	"testing"

	"github.com/dkgmgo/bmssp/core"
)

// BenchmarkAddEdge measures the amortized cost of AddEdge over a directed,
// weighted graph growing to b.N disjoint edges.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := fmt.Sprintf("v%d", i)
		to := fmt.Sprintf("v%d", i+1)
		if _, err := g.AddEdge(from, to, 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEdges measures Edges() over a graph with a fixed edge count,
// dominated by the sort.Slice call that guarantees digraph.From a
// deterministic out-edge order.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	const n = 5000
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("v%d", i)
		to := fmt.Sprintf("v%d", i+1)
		if _, err := g.AddEdge(from, to, 1); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkHasEdge measures lookup cost against a graph with n vertices.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	const n = 5000
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("v%d", i)
		to := fmt.Sprintf("v%d", i+1)
		if _, err := g.AddEdge(from, to, 1); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge("v0", "v1")
	}
}
