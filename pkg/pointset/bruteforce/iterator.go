package bruteforce

import "github.com/go-sod/pointset/pkg/geom"

type sliceIterator struct {
	points []geom.Point
	idx    int
}

func newSliceIterator(points []geom.Point) *sliceIterator {
	return &sliceIterator{points: points}
}

func (it *sliceIterator) Next() (geom.Point, bool) {
	if it.idx >= len(it.points) {
		return geom.Point{}, false
	}
	p := it.points[it.idx]
	it.idx++
	return p, true
}
