package kdtree

import "github.com/go-sod/pointset/pkg/geom"

// Cursor is a forward-only position in a Tree's in-order walk. The zero
// Cursor is the end position, matching Tree.End.
//
// Because Go is garbage collected, a Cursor needs no ownership tricks
// to stay valid across a source Tree's later inserts and rebuilds: it
// holds a plain pointer to the node it names, and that node (along with
// whatever it still links to) is kept alive for as long as the Cursor
// references it, independent of whatever the tree itself does
// afterward. Two Cursors taken from the same Tree at different times
// can be compared and re-walked freely; they simply may no longer agree
// on what "comes next" if the tree was rebuilt in between.
type Cursor struct {
	node *node
}

// Begin returns a Cursor at t's first point in axis order.
func (t *Tree) Begin() Cursor {
	return Cursor{node: t.begin}
}

// End returns the Cursor one past t's last point.
func (t *Tree) End() Cursor {
	return Cursor{}
}

// Done reports whether c has run past the last point.
func (c Cursor) Done() bool {
	return c.node == nil
}

// Point returns the point at c. Calling Point on a done Cursor panics.
func (c Cursor) Point() geom.Point {
	return c.node.point
}

// Next returns the Cursor advanced by one position. Calling Next past
// the end is a no-op.
func (c Cursor) Next() Cursor {
	if c.node == nil {
		return c
	}
	return Cursor{node: c.node.next}
}

// Equal reports whether c and other name the same position.
func (c Cursor) Equal(other Cursor) bool {
	return c.node == other.node
}
