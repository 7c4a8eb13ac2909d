package dijkstra_test

import (
	"fmt"

	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/dijkstra"
)

func ExampleBinaryHeap() {
	g := digraph.New(3)
	g.AddEdge(0, 1, 4)
	g.AddEdge(1, 2, 3)
	g.AddEdge(0, 2, 10)

	dist, _, err := dijkstra.BinaryHeap(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist[2])
	// Output: 7
}
