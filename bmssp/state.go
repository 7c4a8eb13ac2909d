// File: state.go
// Role: the relaxation state shared by every frame of a single top-level
// BMSSP call (component D): current best path per vertex, the tight-edge
// forest find_pivots rebuilds each call, and level completion marks.
package bmssp

import (
	"github.com/dkgmgo/bmssp/digraph"
	"github.com/dkgmgo/bmssp/pathrec"
)

// state is allocated once per ComputeSSSP call and threaded by pointer
// through every recursive frame. Because the recursion is strictly
// sequential and single-threaded (see the algorithm's concurrency model),
// every frame observes the mutations of its descendants before it resumes,
// with no locking required.
type state struct {
	graph *digraph.Graph

	// paths holds the current best Path to each vertex, keyed by vertex id.
	paths []pathrec.Path

	// forest[u] lists the tight-edge children of u within the window
	// find_pivots last rebuilt it over: v such that paths[v] equals the
	// relaxation of paths[u] across edge (u,v).
	forest [][]int
	// inDegree[v] counts tight parents of v in the current forest.
	inDegree []int

	// completed marks every vertex that the loop in run has added to U, at
	// any level, during this top-level call. The mark is never cleared and
	// does not record the level, so the final W-scan in run skips a vertex
	// completed at any level, not only one completed at its own level.
	completed []bool

	// visitedStamp/visitedToken give subtreeAtLeast a visited array it can
	// reuse across calls without clearing: bump the token once per query,
	// compare a vertex's stamp against it instead of zeroing the slice.
	visitedStamp []int
	visitedToken int
}

func newState(g *digraph.Graph) *state {
	n := g.NumVertices()
	paths := make([]pathrec.Path, n)
	for v := range paths {
		paths[v] = pathrec.Unset(v)
	}
	return &state{
		graph:        g,
		paths:        paths,
		forest:       make([][]int, n),
		inDegree:     make([]int, n),
		completed:    make([]bool, n),
		visitedStamp: make([]int, n),
	}
}

// nextToken bumps and returns the stamp token for a fresh subtree query.
func (s *state) nextToken() int {
	s.visitedToken++
	return s.visitedToken
}
