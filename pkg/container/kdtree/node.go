package kdtree

import "github.com/go-sod/pointset/pkg/geom"

// node is one vertex of the tree: a stored point, the discriminant axis
// used to partition its children, owning references to the left and
// right subtrees, a non-owning successor link used for in-order
// traversal, and the subtree's weight m (node count, including itself).
//
// The left subtree holds every descendant point whose coordinate on
// axis is strictly less than point's; the right subtree holds
// coordinate >= point's. next names the node that follows this node in
// an in-order walk of the whole tree it belongs to; it is nil exactly
// at the last node of that walk.
type node struct {
	point geom.Point
	axis  geom.Axis
	left  *node
	right *node
	next  *node
	m     int
}

func newLeaf(p geom.Point, axis geom.Axis, next *node) *node {
	return &node{point: p, axis: axis, next: next, m: 1}
}

// goesLeft reports whether p belongs in the left subtree of a node
// discriminating on axis with point cur.
func goesLeft(p, cur geom.Point, axis geom.Axis) bool {
	return p.Axis(axis) < cur.Axis(axis)
}

// leftmost walks n's left spine to find the subtree minimum.
func leftmost(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost walks n's right spine to find the subtree maximum.
func rightmost(n *node) *node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// collect gathers every point in the subtree rooted at n, in the
// in-order sequence its successor links already encode: walk to the
// subtree minimum, then follow next until reaching the subtree maximum.
//
// This relies on the invariant that an untouched subtree's successor
// chain already encodes that subtree's in-order walk, so no separate
// recursive traversal is needed to collect it for a rebuild.
func collect(n *node) []geom.Point {
	first, last := leftmost(n), rightmost(n)
	out := make([]geom.Point, 0, n.m)
	for cur := first; ; cur = cur.next {
		out = append(out, cur.point)
		if cur == last {
			break
		}
	}
	return out
}
