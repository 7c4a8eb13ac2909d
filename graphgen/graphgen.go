// Package graphgen builds random weighted graphs for tests and benchmarks.
// It is an external collaborator, not part of the BMSSP core: nothing under
// bbl/bmssp/pathrec/digraph/constdeg imports it.
//
// Grounded on the teacher's builder package (an unexported config struct
// mutated by functional options, later options winning) and on
// original_source/utils.cpp's random_graph/random_graph_with_unit_weights
// for the generation shape itself: pick edges uniformly among distinct
// ordered vertex pairs, weight them uniformly in a caller-chosen range.
package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dkgmgo/bmssp/core"
)

// ErrTooManyEdges indicates more edges were requested than exist among
// distinct ordered pairs of n vertices (n*(n-1) for a directed graph,
// or n*(n-1)/2 for undirected).
var ErrTooManyEdges = errors.New("graphgen: requested edge count exceeds available vertex pairs")

// ErrBadVertexCount indicates n < 1.
var ErrBadVertexCount = errors.New("graphgen: vertex count must be positive")

type config struct {
	rng      *rand.Rand
	directed bool
}

// Option customizes Random/RandomUnitWeight; later options override earlier
// ones, following the teacher's BuilderOption convention.
type Option func(*config)

// WithSeed seeds the generator's RNG for reproducible output. Without it,
// generation uses a fixed default seed rather than real entropy, since
// tests built on top of these generators need deterministic fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDirected sets whether generated edges are directed (default true,
// matching the dense-id digraph model the core consumes).
func WithDirected(directed bool) Option {
	return func(c *config) {
		c.directed = directed
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		rng:      rand.New(rand.NewSource(1)),
		directed: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Random builds a graph of n vertices and the given number of distinct
// edges, each weighted uniformly in [0, maxWeight).
func Random(n, edges int, maxWeight float64, opts ...Option) (*core.Graph, error) {
	return build(n, edges, opts, func(c *config) float64 {
		return c.rng.Float64() * maxWeight
	})
}

// RandomUnitWeight builds a graph of n vertices and the given number of
// distinct edges, every edge weighted exactly 1 — the unit-weight fixture
// original_source/utils.cpp's random_graph_with_unit_weights produces,
// useful for isolating hop-count behavior from weight distribution.
func RandomUnitWeight(n, edges int, opts ...Option) (*core.Graph, error) {
	return build(n, edges, opts, func(*config) float64 { return 1 })
}

func build(n, edges int, opts []Option, weightOf func(*config) float64) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrBadVertexCount
	}
	c := newConfig(opts...)

	maxPairs := n * (n - 1)
	if !c.directed {
		maxPairs /= 2
	}
	if edges > maxPairs {
		return nil, fmt.Errorf("%w: n=%d directed=%v supports at most %d", ErrTooManyEdges, n, c.directed, maxPairs)
	}

	g := core.NewGraph(core.WithWeighted(), core.WithDirected(c.directed))
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, err
		}
	}

	seen := make(map[[2]int]bool, edges)
	for len(seen) < edges {
		u := c.rng.Intn(n)
		v := c.rng.Intn(n)
		if u == v {
			continue
		}
		key := [2]int{u, v}
		if !c.directed && u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if _, err := g.AddEdge(vertexID(u), vertexID(v), weightOf(c)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func vertexID(i int) string {
	return fmt.Sprintf("v%d", i)
}
