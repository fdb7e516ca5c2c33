// Package pointset defines the contract shared by every backend that
// stores a 2D point set: the brute-force reference implementation
// (pkg/pointset/bruteforce) and the scapegoat k-d tree implementation
// (pkg/pointset/kdpointset). Both satisfy PointSet identically, so
// callers — and this module's tests — can swap one for the other
// without changing anything but the constructor call.
package pointset

import "github.com/go-sod/pointset/pkg/geom"

// PointSet is a mutable collection of distinct 2D points supporting
// membership, axis-aligned range, and k-nearest-neighbor queries.
//
// Put is the only mutating operation and is not safe to call
// concurrently with itself or with any other method. Every other
// method may be called concurrently with any other non-Put call.
type PointSet interface {
	// Empty reports whether the set holds no points.
	Empty() bool

	// Size returns the number of distinct points held.
	Size() int

	// Put inserts p. Inserting an already-present point (under the
	// implementation's equality) is a no-op.
	Put(p geom.Point)

	// Contains reports whether p is held.
	Contains(p geom.Point) bool

	// Begin returns an Iterator positioned at the set's first point in
	// the implementation's natural order.
	Begin() Iterator

	// Range returns an Iterator over every point contained in r.
	Range(r geom.Rect) Iterator

	// Nearest returns the point closest to p, and false if the set is
	// empty.
	Nearest(p geom.Point) (geom.Point, bool)

	// NearestK returns an Iterator over every point at distance no
	// greater than the k-th smallest distance to p — see DESIGN.md for
	// why this may yield more than k points on ties. k is clamped to
	// Size(); k == 0 or an empty set yields a done Iterator.
	NearestK(p geom.Point, k int) Iterator
}

// Iterator walks a sequence of points produced by a query. It is
// forward-only and exhausted after its first false return from Next.
type Iterator interface {
	// Next returns the next point and true, or a zero Point and false
	// once the sequence is exhausted.
	Next() (geom.Point, bool)
}
