// File: basecase.go
// Role: component F, base_case — bounded Dijkstra from a single source,
// settling at most k+1 vertices with path value strictly less than B.
//
// Grounded on the teacher's dijkstra package (container/heap over a value
// type, lazy stale-entry skipping on pop) applied to pathrec.Path's lex
// order instead of a plain float distance, and on original_source/3.cpp's
// base_case_of_BMSSP for the k+1-settle termination rule.
package bmssp

import (
	"container/heap"

	"github.com/dkgmgo/bmssp/pathrec"
)

// pathQueue is a container/heap priority queue of path records ordered by
// pathrec.Path.Less, the same lex order used throughout this module.
type pathQueue []pathrec.Path

func (q pathQueue) Len() int            { return len(q) }
func (q pathQueue) Less(i, j int) bool  { return q[i].Less(q[j]) }
func (q pathQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x interface{}) { *q = append(*q, x.(pathrec.Path)) }
func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]
	return p
}

// baseCase implements base_case(k, B, S) under the precondition |S| == 1.
// It runs Dijkstra from S's single source, relaxing only edges whose
// relaxed value is both < B and an improvement over the stored path,
// stopping once k+1 distinct vertices are settled or the heap empties.
//
// If at most k vertices settle, it returns (B, settled). Otherwise it pops
// the (k+1)th — the largest — settled vertex back off, returning its path
// as the new bound B' and the remaining k vertices as the settled set.
func baseCase(st *state, k int, B pathrec.Path, S []int) (pathrec.Path, []int) {
	if len(S) != 1 {
		panic(&InvariantError{Op: "base_case", Msg: "requires |S| == 1"})
	}
	s0 := S[0]

	q := &pathQueue{st.paths[s0]}
	heap.Init(q)

	settled := make([]int, 0, k+1)
	isSettled := make(map[int]bool, k+1)

	for q.Len() > 0 && len(settled) < k+1 {
		cur := heap.Pop(q).(pathrec.Path)
		u := cur.Node

		// Stale-entry handling: if a strictly better path to u has since
		// been recorded, this popped entry is outdated; skip it.
		if st.paths[u].Less(cur) {
			continue
		}
		if isSettled[u] {
			continue
		}
		isSettled[u] = true
		settled = append(settled, u)

		for _, e := range st.graph.OutEdges(u) {
			temp := pathrec.Relax(st.paths[u], e.To, e.Weight)
			if !temp.Less(B) {
				continue
			}
			if !temp.LessOrEqual(st.paths[e.To]) {
				continue
			}
			st.paths[e.To] = temp
			heap.Push(q, temp)
		}
	}

	if len(settled) <= k {
		return B, settled
	}

	popped := settled[len(settled)-1]
	return st.paths[popped], settled[:len(settled)-1]
}
