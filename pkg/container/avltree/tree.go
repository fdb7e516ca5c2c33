// Package avltree implements an AVL-balanced ordered container keyed on
// geom.Point's exact total order (Point.Compare). It backs the
// reference (brute-force) point set implementation in
// pkg/pointset/bruteforce.
package avltree

import "github.com/go-sod/pointset/pkg/geom"

// FilterFn reports whether p should be kept by Tree.Filter.
type FilterFn func(p geom.Point) bool

func New() *Tree {
	return &Tree{}
}

type Tree struct {
	root *node
	len  int
}

func (t *Tree) Len() int {
	return t.len
}

// Points returns every point in the tree in ascending Point.Compare
// order.
func (t *Tree) Points() []geom.Point {
	if t.root == nil {
		return []geom.Point{}
	}
	return t.root.points()
}

func (t *Tree) Filter(fn FilterFn) []geom.Point {
	if t.root == nil {
		return []geom.Point{}
	}
	return t.root.filter(fn)
}

func (t *Tree) Add(p geom.Point) {
	if t.root == nil {
		t.root = &node{point: p}
	} else {
		t.root = t.root.add(p)
	}
	t.len++
}

func (t *Tree) Contains(p geom.Point) bool {
	cur := t.root
	for cur != nil {
		switch c := p.Compare(cur.point); {
		case c == 0:
			return true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}
