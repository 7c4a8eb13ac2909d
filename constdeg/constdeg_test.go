package constdeg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkgmgo/bmssp/constdeg"
	"github.com/dkgmgo/bmssp/digraph"
)

func degrees(g *digraph.Graph) (out, in []int) {
	n := g.NumVertices()
	out = make([]int, n)
	in = make([]int, n)
	for u := 0; u < n; u++ {
		for _, e := range g.OutEdges(u) {
			out[u]++
			in[e.To]++
		}
	}
	return out, in
}

func TestTransform_LowDegreeGraphIsUnchanged(t *testing.T) {
	g := digraph.New(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)

	gp, np := constdeg.Transform(g)
	require.Equal(t, 3, np)
	require.Equal(t, []digraph.Edge{{To: 1, Weight: 1}}, gp.OutEdges(0))
	require.Equal(t, []digraph.Edge{{To: 2, Weight: 2}}, gp.OutEdges(1))
	require.Empty(t, gp.OutEdges(2))
}

func TestTransform_BoundsOutDegree(t *testing.T) {
	g := digraph.New(5)
	for v := 1; v <= 4; v++ {
		g.AddEdge(0, v, float64(v))
	}

	gp, np := constdeg.Transform(g)
	require.Greater(t, np, g.NumVertices())

	out, in := degrees(gp)
	for u := 0; u < np; u++ {
		require.LessOrEqualf(t, out[u], 2, "vertex %d out-degree", u)
		require.LessOrEqualf(t, in[u], 2, "vertex %d in-degree", u)
	}
}

func TestTransform_BoundsInDegree(t *testing.T) {
	g := digraph.New(5)
	for v := 1; v <= 4; v++ {
		g.AddEdge(v, 0, float64(v))
	}

	gp, np := constdeg.Transform(g)
	out, in := degrees(gp)
	for u := 0; u < np; u++ {
		require.LessOrEqualf(t, out[u], 2, "vertex %d out-degree", u)
		require.LessOrEqualf(t, in[u], 2, "vertex %d in-degree", u)
	}
}

func TestTransform_BoundsCombinedDegree(t *testing.T) {
	// vertex 0: two in, two out => combined 4 > 3, must decompose even
	// though neither direction alone exceeds 2.
	g := digraph.New(5)
	g.AddEdge(1, 0, 1)
	g.AddEdge(2, 0, 1)
	g.AddEdge(0, 3, 1)
	g.AddEdge(0, 4, 1)

	gp, np := constdeg.Transform(g)
	require.Greater(t, np, g.NumVertices())

	out, in := degrees(gp)
	for u := 0; u < np; u++ {
		require.LessOrEqualf(t, out[u], 2, "vertex %d out-degree", u)
		require.LessOrEqualf(t, in[u], 2, "vertex %d in-degree", u)
	}
}

func TestTransform_CycleEdgesAreZeroWeight(t *testing.T) {
	g := digraph.New(5)
	for v := 1; v <= 4; v++ {
		g.AddEdge(0, v, 9)
	}

	gp, np := constdeg.Transform(g)

	var zero, nonZero int
	for u := 0; u < np; u++ {
		for _, e := range gp.OutEdges(u) {
			if e.Weight == 0 {
				zero++
			} else {
				nonZero++
			}
		}
	}
	require.Positive(t, zero)
	require.Equal(t, 4, nonZero) // the four original edges keep weight 9
}

func TestTransform_OriginalVertexIDReusedInCycle(t *testing.T) {
	g := digraph.New(5)
	for v := 1; v <= 4; v++ {
		g.AddEdge(0, v, float64(v))
	}

	gp, _ := constdeg.Transform(g)

	// vertex 0's own id must still appear somewhere in the transformed
	// graph carrying one of its four original out-edges.
	found := false
	for _, e := range gp.OutEdges(0) {
		if e.Weight != 0 {
			found = true
		}
	}
	require.True(t, found)
}

func TestTransform_PreservesTotalEdgeWeight(t *testing.T) {
	g := digraph.New(5)
	g.AddEdge(1, 0, 3)
	g.AddEdge(2, 0, 4)
	g.AddEdge(0, 3, 5)
	g.AddEdge(0, 4, 6)

	gp, np := constdeg.Transform(g)

	var sum float64
	for u := 0; u < np; u++ {
		for _, e := range gp.OutEdges(u) {
			sum += e.Weight
		}
	}
	require.Equal(t, 3.0+4+5+6, sum)
}
