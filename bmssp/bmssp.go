// Package bmssp implements the BMSSP single-source shortest path recursion
// (component G) over the dense-id digraph model, together with the
// top-level entry point that derives the algorithm's k/t/l parameters from
// the graph size and drives the recursion from a single source.
//
// Grounded on original_source/3.cpp's BMSSP and top_level_BMSSP, restated
// over this module's own state, pathrec, and bbl packages.
package bmssp

import (
	"errors"
	"fmt"
	"math"

	"github.com/dkgmgo/bmssp/bbl"
	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/pathrec"
)

// InvariantError reports a fatal precondition or invariant violation raised
// by the recursion itself, distinct from bbl.InvariantError which reports
// violations internal to the block list. Both are programmer errors: the
// algorithm's error-handling design treats them as fatal and unrecoverable
// for the current top-level call.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bmssp: invariant violated in %s: %s", e.Op, e.Msg)
}

// ErrNilGraph indicates ComputeSSSP was called with a nil graph.
var ErrNilGraph = errors.New("bmssp: graph is nil")

// ErrSourceOutOfRange indicates src is not a valid vertex id of the graph.
var ErrSourceOutOfRange = errors.New("bmssp: source out of range")

// ErrNegativeWeight indicates a negative edge weight was found; the
// algorithm requires non-negative weights throughout.
var ErrNegativeWeight = errors.New("bmssp: negative edge weight encountered")

// ComputeSSSP runs BMSSP from src over g, returning the shortest-path
// distance and predecessor for every vertex. dist[v] is pathrec.Inf for
// vertices unreachable from src; parent[v] is pathrec.NoParent for src
// itself and for unreachable vertices.
//
// Fatal precondition or invariant violations (§7 of the algorithm's error
// design) surface as a returned *InvariantError or *bbl.InvariantError
// rather than a panic escaping to the caller.
func ComputeSSSP(g *digraph.Graph, src int) (dist []float64, parent []int, err error) {
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

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *InvariantError:
			err = e
		case *bbl.InvariantError:
			err = e
		default:
			panic(r)
		}
	}()

	st := newState(g)
	st.paths[src] = pathrec.Source(src)

	k, t, l := levelParams(n)
	_, u := run(st, t, k, l, pathrec.Bound(), []int{src})
	_ = u // U at the top level is a subset of reachable vertices; paths holds the full answer

	dist = make([]float64, n)
	parent = make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = st.paths[v].Length
		parent[v] = st.paths[v].Parent
	}
	return dist, parent, nil
}

// levelParams derives (k, t, l) from N as specified for the top-level call,
// each floored/ceiled from log2(N) and clamped to at least 1 (0 for l when
// N is too small for the formula to produce a meaningful recursion depth).
func levelParams(n int) (k, t, l int) {
	if n <= 1 {
		return 1, 1, 0
	}
	logN := math.Log2(float64(n))
	k = maxInt(1, int(math.Floor(math.Cbrt(logN))))
	t = maxInt(1, int(math.Floor(math.Pow(logN, 2.0/3.0))))
	l = maxInt(0, int(math.Ceil(logN/float64(t))))
	return k, t, l
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// run implements BMSSP(t, k, l, B, S) -> (B', U).
func run(st *state, t, k, l int, B pathrec.Path, S []int) (pathrec.Path, []int) {
	maxS := 1 << uint(l*t)
	if len(S) > maxS {
		panic(&InvariantError{Op: "BMSSP", Msg: fmt.Sprintf("|S|=%d exceeds 2^(l*t)=%d", len(S), maxS)})
	}

	if l == 0 {
		return baseCase(st, k, B, S)
	}

	P, W := findPivots(st, k, B, S)

	m := 1 << uint((l-1)*t)
	blocks := bbl.NewList()
	blocks.Initialize(m, B)

	bPrime := B
	for _, x := range P {
		blocks.Insert(x, st.paths[x])
		if st.paths[x].Less(bPrime) {
			bPrime = st.paths[x]
		}
	}

	var U []int
	maxU := k * (1 << uint(l*t))

	for len(U) < maxU && !blocks.Empty() {
		keys, bi := blocks.Pull()
		sSub := append([]int(nil), keys...)

		biPrime, ui := run(st, t, k, l-1, bi, sSub)
		if biPrime.Less(bPrime) {
			panic(&InvariantError{Op: "BMSSP", Msg: "B' regressed across recursive calls"})
		}
		bPrime = biPrime

		U = append(U, ui...)

		var carry []bbl.Item
		for _, u := range ui {
			st.completed[u] = true
			blocks.Delete(u)

			for _, e := range st.graph.OutEdges(u) {
				temp := pathrec.Relax(st.paths[u], e.To, e.Weight)
				if !temp.LessOrEqual(st.paths[e.To]) {
					continue
				}
				st.paths[e.To] = temp
				switch {
				case bi.LessOrEqual(temp) && temp.Less(B):
					blocks.Insert(e.To, temp)
				case bPrime.LessOrEqual(temp) && temp.Less(bi):
					carry = append(carry, bbl.Item{Key: e.To, Value: temp})
				}
			}
		}
		for _, x := range sSub {
			if bPrime.LessOrEqual(st.paths[x]) && st.paths[x].Less(bi) {
				carry = append(carry, bbl.Item{Key: x, Value: st.paths[x]})
			}
		}
		if len(carry) > 0 {
			blocks.BatchPrepend(carry)
		}
	}

	final := bPrime
	if B.Less(final) {
		final = B
	}
	for _, x := range W {
		if !st.completed[x] && st.paths[x].Less(final) {
			U = append(U, x)
		}
	}

	return final, U
}
