package kdpointset

import (
	"github.com/go-sod/pointset/pkg/container/kdtree"
	"github.com/go-sod/pointset/pkg/geom"
)

// cursorIterator adapts a kdtree.Cursor to pointset.Iterator. It holds
// the cursor's underlying tree alive for as long as the iterator is
// reachable, so a Range/NearestK iterator keeps working even after the
// source set is mutated or rebuilt out from under it.
type cursorIterator struct {
	cur kdtree.Cursor
}

func (it *cursorIterator) Next() (geom.Point, bool) {
	if it.cur.Done() {
		return geom.Point{}, false
	}
	p := it.cur.Point()
	it.cur = it.cur.Next()
	return p, true
}
