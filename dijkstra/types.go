// Package dijkstra provides the external correctness oracle the rest of
// this module's tests and benchmarks compare BMSSP against. It is
// deliberately independent of bbl/bmssp's recursion machinery — a plain
// single-source Dijkstra, the textbook algorithm BMSSP is asymptotically
// faster than on sparse graphs — so a bug shared between the two would have
// to be a genuine algorithmic coincidence rather than shared code.
//
// Two implementations are provided, both over the same *digraph.Graph /
// float64 model the core uses: BinaryHeap follows the teacher's
// lazy-decrease-key pattern (push a duplicate entry, skip stale pops);
// DecreaseKeyHeap instead tracks each vertex's live heap slot and calls
// heap.Fix, the idiomatic container/heap alternative to a Fibonacci heap.
package dijkstra

import "errors"

// Sentinel errors returned by both oracle implementations.
var (
	// ErrNilGraph indicates a nil *digraph.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates src is not a valid vertex id of g.
	ErrSourceOutOfRange = errors.New("dijkstra: source out of range")

	// ErrNegativeWeight indicates a negative edge weight was found; both
	// algorithms require non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)
