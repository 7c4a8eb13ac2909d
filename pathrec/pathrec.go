// Package pathrec defines the path record used as the priority key throughout
// the BMSSP core: a lexicographically ordered triple of (length, hops, node)
// with an auxiliary parent field for path reconstruction.
//
// A Path to vertex v is the tuple (length, hops, node=v, parent=u) where
// length is the sum of edge weights on the path and hops is the number of
// edges on it (zero for the source). The total order used everywhere in this module
// — the BBL's block thresholds, the base case's heap, the pivot finder's
// relaxation — is strict lexicographic on (length, hops, node); parent never
// participates in comparisons, it only carries the information needed to
// rebuild the shortest-path tree once the recursion settles.
//
// Complexity: every operation here is O(1); Path is a plain value type with
// no allocation on comparison or relaxation.
package pathrec

// Inf is the sentinel path length standing in for +∞. Inherited verbatim
// from the algorithm's reference fixtures so test expectations keep working
// bit-for-bit; it is not math.Inf(1) because some existing test corpora
// compare against this exact finite value.
const Inf = 1e7

// NoParent is the sentinel parent/predecessor id for the source vertex and
// for any vertex that never receives a tight incoming edge.
const NoParent = -1

// Path is the lexicographically ordered priority key: (Length, Hops, Node)
// with Parent carried along for path reconstruction but excluded from Less
// and Equal.
type Path struct {
	Length float64
	Hops   int
	Node   int
	Parent int
}

// Unset returns the path record used to initialize every non-source vertex:
// length +∞, zero hops, the given node id, and no parent.
func Unset(node int) Path {
	return Path{Length: Inf, Hops: 0, Node: node, Parent: NoParent}
}

// Source returns the path record for a source vertex: zero length, zero
// hops, no parent.
func Source(node int) Path {
	return Path{Length: 0, Hops: 0, Node: node, Parent: NoParent}
}

// Bound returns the maximal path record used as the initial top-level bound
// B: +∞ length, compares greater than every finite path regardless of node.
func Bound() Path {
	return Path{Length: Inf, Hops: 0, Node: NoParent, Parent: NoParent}
}

// Less reports whether p strictly precedes o in the lexicographic order on
// (Length, Hops, Node). This is the total order the whole core relies on:
// it guarantees a well-defined threshold even when two vertices share the
// same distance.
func (p Path) Less(o Path) bool {
	if p.Length != o.Length {
		return p.Length < o.Length
	}
	if p.Hops != o.Hops {
		return p.Hops < o.Hops
	}
	return p.Node < o.Node
}

// LessOrEqual reports whether p is not strictly greater than o.
func (p Path) LessOrEqual(o Path) bool {
	return !o.Less(p)
}

// Equal compares (Length, Hops, Node); Parent is auxiliary and excluded.
// Two unreachable (+Inf) paths to different nodes compare unequal — this is
// intentional, not a bug: Node still participates in the comparison.
func (p Path) Equal(o Path) bool {
	return p.Length == o.Length && p.Hops == o.Hops && p.Node == o.Node
}

// Relax computes the candidate path record obtained by extending u with an
// edge u->v of weight w: (u.Length+w, u.Hops+1, v, u.Node).
func Relax(u Path, v int, w float64) Path {
	return Path{Length: u.Length + w, Hops: u.Hops + 1, Node: v, Parent: u.Node}
}
