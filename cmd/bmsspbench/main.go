// Command bmsspbench generates a random graph, runs BMSSP and both
// Dijkstra oracles from the same source, cross-checks that their distances
// agree, and reports wall-clock time per algorithm.
//
// Grounded on original_source/runner.hpp's quicktest/
// avg_time_of_x_vertex_as_src benchmark harness, restated as a single-shot
// stdlib-flag CLI rather than that file's stateful, file-writing harness —
// this module carries no persistence layer (§6: "Persisted state: None"),
// so the benchmark just prints to standard error via the standard library's
// log package, the one place in this module that logs anything at all.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/dkgmgo/bmssp/bmssp"
	"github.com/dkgmgo/bmssp/core"
	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/dijkstra"
	"github.com/dkgmgo/bmssp/graphgen"
)

func main() {
	n := flag.Int("n", 2000, "number of vertices")
	m := flag.Int("m", 6000, "number of edges")
	maxWeight := flag.Float64("w", 100, "maximum edge weight")
	seed := flag.Int64("seed", 1, "random seed")
	src := flag.Int("src", 0, "source vertex")
	unitWeight := flag.Bool("unit", false, "use unit edge weights instead of random ones")
	flag.Parse()

	g, err := buildGraph(*n, *m, *maxWeight, *seed, *unitWeight)
	if err != nil {
		log.Fatalf("bmsspbench: graph generation failed: %v", err)
	}

	dg, ids, err := digraph.From(g)
	if err != nil {
		log.Fatalf("bmsspbench: digraph conversion failed: %v", err)
	}
	log.Printf("generated graph: %d vertices, %d edges", dg.NumVertices(), *m)

	bmsspDist := timeRun("BMSSP", func() []float64 {
		dist, _, err := bmssp.ComputeSSSP(dg, *src)
		if err != nil {
			log.Fatalf("bmsspbench: BMSSP failed: %v", err)
		}
		return dist
	})

	binaryDist := timeRun("Dijkstra (binary heap)", func() []float64 {
		dist, _, err := dijkstra.BinaryHeap(dg, *src)
		if err != nil {
			log.Fatalf("bmsspbench: binary-heap Dijkstra failed: %v", err)
		}
		return dist
	})

	decreaseKeyDist := timeRun("Dijkstra (decrease-key heap)", func() []float64 {
		dist, _, err := dijkstra.DecreaseKeyHeap(dg, *src)
		if err != nil {
			log.Fatalf("bmsspbench: decrease-key Dijkstra failed: %v", err)
		}
		return dist
	})

	mismatches := 0
	for v := range bmsspDist {
		if bmsspDist[v] != binaryDist[v] || bmsspDist[v] != decreaseKeyDist[v] {
			mismatches++
			if mismatches <= 10 {
				log.Printf("mismatch at vertex %d (%s): bmssp=%g binary=%g decreaseKey=%g",
					v, ids[v], bmsspDist[v], binaryDist[v], decreaseKeyDist[v])
			}
		}
	}
	if mismatches == 0 {
		log.Printf("all %d distances agree across BMSSP and both oracles", len(bmsspDist))
	} else {
		log.Printf("%d distance mismatches found", mismatches)
	}
}

func buildGraph(n, m int, maxWeight float64, seed int64, unitWeight bool) (*core.Graph, error) {
	if unitWeight {
		return graphgen.RandomUnitWeight(n, m, graphgen.WithSeed(seed))
	}
	return graphgen.Random(n, m, maxWeight, graphgen.WithSeed(seed))
}

func timeRun(label string, f func() []float64) []float64 {
	start := time.Now()
	dist := f()
	log.Printf("%-30s %v", label, time.Since(start))
	return dist
}
