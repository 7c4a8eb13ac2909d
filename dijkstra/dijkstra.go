package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/pathrec"
)

// validate performs the shared precondition checks and allocates the
// initial dist/prev arrays, dist[v] = pathrec.Inf and prev[v] =
// pathrec.NoParent for every v except dist[src] = 0.
func validate(g *digraph.Graph, src int) (dist []float64, prev []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumVertices()
	if src < 0 || src >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	dist = make([]float64, n)
	prev = make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = pathrec.Inf
		prev[v] = pathrec.NoParent
	}
	dist[src] = 0

	return dist, prev, nil
}

// nodeItem is a single (vertex, distance) heap entry for BinaryHeap's
// lazy-decrease-key strategy.
type nodeItem struct {
	vertex int
	dist   float64
}

type nodePQ []nodeItem

func (q nodePQ) Len() int            { return len(q) }
func (q nodePQ) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodePQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodePQ) Push(x interface{}) { *q = append(*q, x.(nodeItem)) }
func (q *nodePQ) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// BinaryHeap computes shortest distances and predecessors from src over g.
// Improvements push a fresh heap entry rather than mutating one in place;
// a popped entry is skipped once its vertex has already been finalized.
func BinaryHeap(g *digraph.Graph, src int) (dist []float64, prev []int, err error) {
	dist, prev, err = validate(g, src)
	if err != nil {
		return nil, nil, err
	}

	visited := make([]bool, g.NumVertices())
	pq := &nodePQ{{vertex: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem)
		u := top.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.OutEdges(u) {
			nd := dist[u] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
				heap.Push(pq, nodeItem{vertex: e.To, dist: nd})
			}
		}
	}

	return dist, prev, nil
}

// indexedItem is a heap entry that knows its own live slot, so an
// improvement can call heap.Fix instead of pushing a duplicate.
type indexedItem struct {
	vertex int
	dist   float64
	index  int
}

type indexedPQ []*indexedItem

func (q indexedPQ) Len() int           { return len(q) }
func (q indexedPQ) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q indexedPQ) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *indexedPQ) Push(x interface{}) {
	it := x.(*indexedItem)
	it.index = len(*q)
	*q = append(*q, it)
}
func (q *indexedPQ) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	it.index = -1
	*q = old[:n-1]
	return it
}

// DecreaseKeyHeap computes shortest distances and predecessors from src
// over g using true decrease-key: every vertex occupies exactly one heap
// slot for as long as it is unsettled, updated in place via heap.Fix.
func DecreaseKeyHeap(g *digraph.Graph, src int) (dist []float64, prev []int, err error) {
	dist, prev, err = validate(g, src)
	if err != nil {
		return nil, nil, err
	}
	n := g.NumVertices()

	items := make([]*indexedItem, n)
	pq := make(indexedPQ, n)
	for v := 0; v < n; v++ {
		items[v] = &indexedItem{vertex: v, dist: dist[v]}
		pq[v] = items[v]
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*indexedItem)
		if top.dist >= pathrec.Inf {
			break
		}
		u := top.vertex

		for _, e := range g.OutEdges(u) {
			it := items[e.To]
			if it.index < 0 {
				continue // already settled
			}
			nd := dist[u] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				prev[e.To] = u
				it.dist = nd
				heap.Fix(&pq, it.index)
			}
		}
	}

	return dist, prev, nil
}
