// File: index.go
// Role: red-black tree ordered-set index over D1 block upper bounds,
// answering "smallest upper bound >= value" (component A of the block list).
//
// Ported from a classic red-black tree (left/right child array indexed by a
// Direction, parent back-pointer, CLRS-style insert/delete fixups) rather
// than rewritten from scratch, since node handles must stay stable under
// rotation: callers hold onto *rbNode returned from insert across later
// removes, so the same node object, never copied, must survive rebalancing.
package bbl

import "github.com/dkgmgo/bmssp/pathrec"

// color is red/black as in any red-black tree.
type color bool

const (
	red   color = true
	black color = false
)

// direction indexes the two children of a node, mirroring the Direction
// enum used by the ported structure so left/right handling stays symmetric.
type direction int

const (
	left  direction = 0
	right direction = 1
)

// indexKey orders D1 blocks by upper bound (a pathrec.Path, the same
// lex-ordered key the whole core uses), with a monotonic sequence number as
// a tiebreaker: two blocks can transiently share an upper bound during a
// split, and the ordered set must still give each a distinct slot.
type indexKey struct {
	upperBound pathrec.Path
	seq        uint64
}

func (a indexKey) less(b indexKey) bool {
	if !a.upperBound.Equal(b.upperBound) {
		return a.upperBound.Less(b.upperBound)
	}
	return a.seq < b.seq
}

// rbNode is a single red-black tree node. block is the payload: a handle
// into the D1 block sequence this node locates.
type rbNode struct {
	key      indexKey
	block    *blockNode
	color    color
	parent   *rbNode
	children [2]*rbNode
}

// orderedIndex is the red-black tree itself, keyed by indexKey.
type orderedIndex struct {
	root    *rbNode
	nextSeq uint64
}

// nextKey allocates a fresh indexKey for upperBound, guaranteeing a total
// order even when two blocks share the same upper bound.
func (t *orderedIndex) nextKey(upperBound pathrec.Path) indexKey {
	t.nextSeq++
	return indexKey{upperBound: upperBound, seq: t.nextSeq}
}

func (t *orderedIndex) rotate(node *rbNode, dir direction) {
	parent := node.parent
	newRoot := node.children[1-dir]
	newChild := newRoot.children[dir]

	node.children[1-dir] = newChild
	if newChild != nil {
		newChild.parent = node
	}

	newRoot.children[dir] = node
	newRoot.parent = parent
	node.parent = newRoot

	if parent != nil {
		if node == parent.children[right] {
			parent.children[right] = newRoot
		} else {
			parent.children[left] = newRoot
		}
	} else {
		t.root = newRoot
	}
}

// insert places a new node keyed by key with the given block handle and
// returns the node, which callers keep as a stable reference for remove.
func (t *orderedIndex) insert(key indexKey, block *blockNode) *rbNode {
	node := &rbNode{key: key, block: block, color: red}

	var parent *rbNode
	cur := t.root
	for cur != nil {
		parent = cur
		if node.key.less(cur.key) {
			cur = cur.children[left]
		} else {
			cur = cur.children[right]
		}
	}

	node.parent = parent
	if parent == nil {
		t.root = node
	} else if node.key.less(parent.key) {
		parent.children[left] = node
	} else {
		parent.children[right] = node
	}

	t.insertFixup(node)

	return node
}

func (t *orderedIndex) insertFixup(node *rbNode) {
	for node != t.root && node.color == red && node.parent.color == red {
		parent := node.parent
		grandparent := parent.parent
		if parent == grandparent.children[left] {
			uncle := grandparent.children[right]
			if uncle != nil && uncle.color == red {
				grandparent.color = red
				parent.color = black
				uncle.color = black
				node = grandparent
			} else {
				if node == parent.children[right] {
					t.rotate(parent, left)
					node = parent
					parent = node.parent
				}
				t.rotate(grandparent, right)
				parent.color, grandparent.color = grandparent.color, parent.color
				node = parent
			}
		} else {
			uncle := grandparent.children[left]
			if uncle != nil && uncle.color == red {
				grandparent.color = red
				parent.color = black
				uncle.color = black
				node = grandparent
			} else {
				if node == parent.children[left] {
					t.rotate(parent, right)
					node = parent
					parent = node.parent
				}
				t.rotate(grandparent, left)
				parent.color, grandparent.color = grandparent.color, parent.color
				node = parent
			}
		}
	}
	t.root.color = black
}

func (t *orderedIndex) transplant(u, v *rbNode) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.children[left] {
		u.parent.children[left] = v
	} else {
		u.parent.children[right] = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func minimum(node *rbNode) *rbNode {
	for node.children[left] != nil {
		node = node.children[left]
	}
	return node
}

// remove deletes node from the tree. node must be a handle previously
// returned by insert on this same tree.
func (t *orderedIndex) remove(node *rbNode) {
	y := node
	yOriginalColor := y.color
	var x *rbNode
	var xParent *rbNode

	if node.children[left] == nil {
		x = node.children[right]
		xParent = node.parent
		t.transplant(node, node.children[right])
	} else if node.children[right] == nil {
		x = node.children[left]
		xParent = node.parent
		t.transplant(node, node.children[left])
	} else {
		y = minimum(node.children[right])
		yOriginalColor = y.color
		x = y.children[right]
		if y.parent == node {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.children[right])
			y.children[right] = node.children[right]
			y.children[right].parent = y
		}
		t.transplant(node, y)
		y.children[left] = node.children[left]
		y.children[left].parent = y
		y.color = node.color
	}

	if yOriginalColor == black {
		t.removeFixup(x, xParent)
	}
}

func (t *orderedIndex) removeFixup(node, parent *rbNode) {
	for node != t.root && colorOf(node) == black && parent != nil {
		if node == parent.children[left] {
			sibling := parent.children[right]
			if sibling == nil {
				return
			}
			if sibling.color == red {
				sibling.color = black
				parent.color = red
				t.rotate(parent, left)
				sibling = parent.children[right]
				if sibling == nil {
					return
				}
			}
			if colorOf(sibling.children[left]) == black && colorOf(sibling.children[right]) == black {
				sibling.color = red
				node = parent
				parent = node.parent
				continue
			}
			if colorOf(sibling.children[right]) == black {
				if sibling.children[left] != nil {
					sibling.children[left].color = black
				}
				sibling.color = red
				t.rotate(sibling, right)
				sibling = parent.children[right]
				if sibling == nil {
					return
				}
			}
			sibling.color = parent.color
			parent.color = black
			if sibling.children[right] != nil {
				sibling.children[right].color = black
			}
			t.rotate(parent, left)
			node = t.root
			parent = nil
		} else {
			sibling := parent.children[left]
			if sibling == nil {
				return
			}
			if sibling.color == red {
				sibling.color = black
				parent.color = red
				t.rotate(parent, right)
				sibling = parent.children[left]
				if sibling == nil {
					return
				}
			}
			if colorOf(sibling.children[right]) == black && colorOf(sibling.children[left]) == black {
				sibling.color = red
				node = parent
				parent = node.parent
				continue
			}
			if colorOf(sibling.children[left]) == black {
				if sibling.children[right] != nil {
					sibling.children[right].color = black
				}
				sibling.color = red
				t.rotate(sibling, left)
				sibling = parent.children[left]
				if sibling == nil {
					return
				}
			}
			sibling.color = parent.color
			parent.color = black
			if sibling.children[left] != nil {
				sibling.children[left].color = black
			}
			t.rotate(parent, right)
			node = t.root
			parent = nil
		}
	}
	if node != nil {
		node.color = black
	}
}

// colorOf treats a nil child as black, matching the standard convention.
func colorOf(n *rbNode) color {
	if n == nil {
		return black
	}
	return n.color
}

// lowerBound returns the node with the smallest upperBound >= value, or
// (nil, false) if no such block exists. Queries always use seq 0, smaller
// than any real inserted key at the same upperBound, so a block whose upper
// bound exactly equals value is found.
func (t *orderedIndex) lowerBound(value pathrec.Path) (*rbNode, bool) {
	query := indexKey{upperBound: value, seq: 0}
	node := t.root
	var result *rbNode
	for node != nil {
		if !node.key.less(query) {
			result = node
			node = node.children[left]
		} else {
			node = node.children[right]
		}
	}
	if result == nil {
		return nil, false
	}

	return result, true
}
