// File: pivot.go
// Role: component E, find_pivots — a k-layer relaxation flood from S that
// reports every vertex it reached (W) and which sources in S anchor a tight
// subtree large enough to act as a pivot for the next recursion level.
//
// Ported from original_source/3.cpp's find_pivots, generalized from its
// fixed-size array state to the dense-id state shared across this package.
package bmssp

import "github.com/dkgmgo/bmssp/pathrec"

// findPivots implements find_pivots(k, B, S): W is S plus every vertex
// reached within k relaxation layers with path value < B. If |W| exceeds
// k*|S| after a layer, it returns early with P = S. Otherwise P is the
// subset of S with in-degree 0 in the tight forest whose tight-forest
// subtree within W has size >= k.
func findPivots(st *state, k int, B pathrec.Path, S []int) (P, W []int) {
	inW := make(map[int]bool, len(S))
	W = append(W, S...)
	for _, v := range S {
		inW[v] = true
	}

	frontier := append([]int(nil), S...)
	overflowed := false
	for i := 0; i < k && len(frontier) > 0; i++ {
		var next []int
		pushed := make(map[int]bool)
		for _, u := range frontier {
			for _, e := range st.graph.OutEdges(u) {
				temp := pathrec.Relax(st.paths[u], e.To, e.Weight)
				if !temp.LessOrEqual(st.paths[e.To]) {
					continue
				}
				st.paths[e.To] = temp
				if !temp.Less(B) {
					continue
				}
				if !inW[e.To] {
					inW[e.To] = true
					W = append(W, e.To)
				}
				if !pushed[e.To] {
					pushed[e.To] = true
					next = append(next, e.To)
				}
			}
		}
		frontier = next

		if len(W) > k*len(S) {
			overflowed = true
			break
		}
	}

	if overflowed {
		return append([]int(nil), S...), W
	}

	buildForest(st, W)

	for _, u := range S {
		if st.inDegree[u] == 0 && subtreeAtLeast(st, u, k) {
			P = append(P, u)
		}
	}

	return P, W
}

// buildForest rebuilds st.forest/st.inDegree restricted to W: an edge (u,v)
// with both endpoints in W is "tight" iff relaxing it reproduces v's
// current best path exactly.
func buildForest(st *state, W []int) {
	inW := make(map[int]bool, len(W))
	for _, v := range W {
		inW[v] = true
		st.forest[v] = st.forest[v][:0]
		st.inDegree[v] = 0
	}

	for _, u := range W {
		for _, e := range st.graph.OutEdges(u) {
			if !inW[e.To] {
				continue
			}
			temp := pathrec.Relax(st.paths[u], e.To, e.Weight)
			if temp.Equal(st.paths[e.To]) {
				st.forest[u] = append(st.forest[u], e.To)
				st.inDegree[e.To]++
			}
		}
	}
}

// subtreeAtLeast reports whether root's tight-forest subtree has at least k
// vertices, short-circuiting as soon as the count is known to reach k.
func subtreeAtLeast(st *state, root, k int) bool {
	token := st.nextToken()
	st.visitedStamp[root] = token

	stack := []int{root}
	count := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if count >= k {
			return true
		}
		for _, v := range st.forest[u] {
			if st.visitedStamp[v] != token {
				st.visitedStamp[v] = token
				stack = append(stack, v)
			}
		}
	}

	return count >= k
}
