// Package kdpointset wraps pkg/container/kdtree to satisfy the shared
// pkg/pointset.PointSet contract, the way the teacher's
// internal/predictor/knn/kd wrapped the same k-d tree package — minus
// the TTL/outdated-eviction scheduler, which implemented a deletion
// semantics this point set does not support.
package kdpointset

import (
	"sync"

	"github.com/go-sod/pointset/pkg/container/kdtree"
	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// New returns an empty point set backed by a scapegoat-balanced k-d
// tree.
func New() *Set {
	return &Set{tree: kdtree.New()}
}

// Set is a PointSet backed by pkg/container/kdtree.
type Set struct {
	mtx  sync.RWMutex
	tree *kdtree.Tree
}

var _ pointset.PointSet = (*Set)(nil)

// Empty reports whether the set holds no points.
func (s *Set) Empty() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tree.Empty()
}

// Size returns the number of distinct points held.
func (s *Set) Size() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tree.Len()
}

// Put inserts p, rebuilding any subtree the scapegoat invariant flags
// along the way. Not safe to call concurrently with itself or any other
// method.
func (s *Set) Put(p geom.Point) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.tree.Insert(p)
}

// Contains reports whether p (under epsilon-equality) is held.
func (s *Set) Contains(p geom.Point) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tree.Contains(p)
}

// Begin returns an Iterator over every point in the tree's cached
// leftmost-first successor-link order.
func (s *Set) Begin() pointset.Iterator {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return &cursorIterator{cur: s.tree.Begin()}
}

// Range returns an Iterator over every point contained in r. The
// iterator walks a fresh result tree built for this call alone, so it
// stays valid even if s is mutated afterward.
func (s *Set) Range(r geom.Rect) pointset.Iterator {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	result := s.tree.Range(r)
	return &cursorIterator{cur: result.Begin()}
}

// Nearest returns the point closest to p, and false if the set is
// empty.
func (s *Set) Nearest(p geom.Point) (geom.Point, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tree.Nearest(p)
}

// NearestK returns an Iterator over every point at distance no greater
// than the k-th smallest distance to p, over a fresh result tree built
// for this call alone.
func (s *Set) NearestK(p geom.Point, k int) pointset.Iterator {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	result := s.tree.NearestK(p, k)
	return &cursorIterator{cur: result.Begin()}
}
