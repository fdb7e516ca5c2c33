package avltree

import (
	"math"

	"github.com/go-sod/pointset/pkg/geom"
)

const needBalanceHeight = 2

type node struct {
	point  geom.Point
	left   *node
	right  *node
	height int
}

func (n *node) insertLeft(p geom.Point) *node {
	root := n
	n.left = n.addToSubTree(n.left, p)
	if n.heightDiff() == needBalanceHeight {
		if p.Compare(n.point) <= 0 {
			root = n.rotateRight()
		} else {
			root = n.rotateLeftThenRight()
		}
	}
	return root
}

func (n *node) insertRight(p geom.Point) *node {
	root := n
	n.right = n.addToSubTree(n.right, p)
	if n.heightDiff() == -needBalanceHeight {
		if p.Compare(n.point) > 0 {
			root = n.rotateLeft()
		} else {
			n.rotateRightThenLeft()
		}
	}
	return root
}

func (n *node) add(p geom.Point) *node {
	var root *node
	if p.Compare(n.point) <= 0 {
		root = n.insertLeft(p)
	} else {
		root = n.insertRight(p)
	}
	root.computeHeight()
	return root
}

func (n *node) rotateRight() *node {
	root := n.left
	grandson := root.right
	n.left = grandson
	root.right = n
	n.computeHeight()
	return root
}

func (n *node) rotateLeft() *node {
	root := n.right
	grandson := root.left
	n.right = grandson
	root.left = n
	n.computeHeight()
	return root
}

func (n *node) rotateRightThenLeft() *node {
	child := n.right
	root := child.left
	if root != nil {
		grandFirst := root.left
		grandSecond := root.right
		child.left = grandSecond
		child.right = grandFirst
		root.left = n
		root.right = child
	}
	child.computeHeight()
	n.computeHeight()
	return root
}

func (n *node) rotateLeftThenRight() *node {
	child := n.left
	root := child.right
	grandFirst := root.left
	grandSecond := root.right
	child.right = grandFirst
	n.left = grandSecond
	root.left = child
	root.right = n
	child.computeHeight()
	n.computeHeight()
	return root
}

func (n *node) addToSubTree(parent *node, p geom.Point) *node {
	if parent == nil {
		return &node{point: p}
	}
	return parent.add(p)
}

func (n *node) computeHeight() {
	height := -1
	if n.left != nil {
		height = int(math.Max(float64(height), float64(n.left.height)))
	}
	if n.right != nil {
		height = int(math.Max(float64(height), float64(n.right.height)))
	}
	n.height = height + 1
}

func (n *node) heightDiff() int {
	leftTarget, rightTarget := 0, 0
	if n.left != nil {
		leftTarget = 1 + n.left.height
	}
	if n.right != nil {
		rightTarget = 1 + n.right.height
	}
	return leftTarget - rightTarget
}

// points returns every point in the subtree rooted at n, in ascending
// Point.Compare order.
func (n *node) points() []geom.Point {
	var out []geom.Point
	if n.left != nil {
		out = append(out, n.left.points()...)
	}
	out = append(out, n.point)
	if n.right != nil {
		out = append(out, n.right.points()...)
	}
	return out
}

// filter returns every point in the subtree rooted at n for which fn
// reports true, in ascending Point.Compare order.
func (n *node) filter(fn FilterFn) []geom.Point {
	var out []geom.Point
	if n.left != nil {
		out = append(out, n.left.filter(fn)...)
	}
	if fn(n.point) {
		out = append(out, n.point)
	}
	if n.right != nil {
		out = append(out, n.right.filter(fn)...)
	}
	return out
}
