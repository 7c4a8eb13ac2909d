package dijkstra_test

import (
	"testing"

	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/dijkstra"
	"github.com/dkgmgo/bmssp/graphgen"
)

func benchGraph(b *testing.B, n, edges int) *digraph.Graph {
	b.Helper()
	g, err := graphgen.Random(n, edges, 100, graphgen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	dg, _, err := digraph.From(g)
	if err != nil {
		b.Fatal(err)
	}
	return dg
}

func BenchmarkBinaryHeap(b *testing.B) {
	g := benchGraph(b, 2000, 6000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.BinaryHeap(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecreaseKeyHeap(b *testing.B) {
	g := benchGraph(b, 2000, 6000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.DecreaseKeyHeap(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
