// Package bruteforce implements the reference point set: a linear-scan
// implementation backed by pkg/container/avltree, kept deliberately
// simple so it can serve as the oracle pkg/pointset/kdpointset is
// checked against.
package bruteforce

import (
	"math"
	"sync"

	"github.com/go-sod/pointset/pkg/container/avltree"
	"github.com/go-sod/pointset/pkg/container/pqueue"
	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// New returns an empty reference point set.
func New() *Set {
	return &Set{data: avltree.New()}
}

// Set is a PointSet backed by an AVL tree ordered on Point.Compare.
type Set struct {
	mtx  sync.RWMutex
	data *avltree.Tree
}

var _ pointset.PointSet = (*Set)(nil)

// Empty reports whether the set holds no points.
func (s *Set) Empty() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.data.Len() == 0
}

// Size returns the number of distinct points held.
func (s *Set) Size() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.data.Len()
}

// Put inserts p, using Point.Compare to detect an already-present point
// — note this is Compare, not the epsilon-tolerant Equal the k-d tree
// backend uses for the same check; see DESIGN.md.
func (s *Set) Put(p geom.Point) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.data.Contains(p) {
		return
	}
	s.data.Add(p)
}

// Contains reports whether p is held, by exact Point.Compare order.
func (s *Set) Contains(p geom.Point) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.data.Contains(p)
}

// Begin returns an Iterator walking every point in ascending
// Point.Compare order.
func (s *Set) Begin() pointset.Iterator {
	return newSliceIterator(s.points())
}

// Range returns an Iterator over every point contained in r, in
// ascending Point.Compare order.
func (s *Set) Range(r geom.Rect) pointset.Iterator {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return newSliceIterator(s.data.Filter(func(p geom.Point) bool {
		return r.Contains(p)
	}))
}

// Nearest returns the point closest to p, breaking ties in favor of
// whichever tied point sorts first under Point.Compare.
func (s *Set) Nearest(p geom.Point) (geom.Point, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	found := false
	var best geom.Point
	bestDist := math.MaxFloat64
	for _, q := range s.data.Points() {
		d := p.Distance(q)
		if !found || d < bestDist {
			best, bestDist, found = q, d, true
		}
	}
	return best, found
}

// NearestK returns an Iterator over every point at distance no greater
// than the k-th smallest distance to p. k is clamped to Size().
func (s *Set) NearestK(p geom.Point, k int) pointset.Iterator {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	points := s.data.Points()
	if k == 0 || len(points) == 0 {
		return newSliceIterator(nil)
	}
	if k > len(points) {
		k = len(points)
	}

	pq := pqueue.New(pqueue.WithCap(uint(k)))
	for _, q := range points {
		pq.Push(q, p.Distance(q))
	}
	boundary, ok := pq.MaxPriority()
	if !ok {
		return newSliceIterator(nil)
	}

	var out []geom.Point
	for _, q := range points {
		if p.Distance(q) <= boundary {
			out = append(out, q)
		}
	}
	return newSliceIterator(out)
}

func (s *Set) points() []geom.Point {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.data.Points()
}
