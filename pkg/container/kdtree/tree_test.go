package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/pointset/pkg/geom"
)

func collectAll(t *Tree) []geom.Point {
	var out []geom.Point
	for c := t.Begin(); !c.Done(); c = c.Next() {
		out = append(out, c.Point())
	}
	return out
}

func TestTreeInsertAndContains(t *testing.T) {
	tr := New()
	assert.True(t, tr.Empty())

	pts := []geom.Point{
		geom.New(2, 3),
		geom.New(5, 4),
		geom.New(9, 6),
		geom.New(4, 7),
		geom.New(8, 1),
		geom.New(7, 2),
	}
	for _, p := range pts {
		tr.Insert(p)
	}

	require.Equal(t, len(pts), tr.Len())
	for _, p := range pts {
		assert.True(t, tr.Contains(p), "expected tree to contain %v", p)
	}
	assert.False(t, tr.Contains(geom.New(100, 100)))
}

func TestTreeInsertDuplicateIsNoop(t *testing.T) {
	tr := New()
	tr.Insert(geom.New(1, 1))
	tr.Insert(geom.New(1, 1))
	assert.Equal(t, 1, tr.Len())
}

func TestTreeInsertTriggersRebalance(t *testing.T) {
	tr := New()
	// A strictly increasing X sequence would degenerate into a linked
	// list without scapegoat rebuilds; after each insert the tree must
	// still satisfy the weight invariant at every node.
	for i := 0; i < 200; i++ {
		tr.Insert(geom.New(float64(i), float64(i%7)))
	}
	require.Equal(t, 200, tr.Len())
	assert.True(t, isBalanced(tr.root))
}

// isBalanced reports whether every node in the subtree rooted at n
// satisfies the scapegoat weight invariant.
func isBalanced(n *node) bool {
	if n == nil {
		return true
	}
	leftW, rightW := 0, 0
	if n.left != nil {
		leftW = n.left.m
	}
	if n.right != nil {
		rightW = n.right.m
	}
	if float64(leftW) > alpha*float64(n.m)+1e-9 || float64(rightW) > alpha*float64(n.m)+1e-9 {
		return false
	}
	return isBalanced(n.left) && isBalanced(n.right)
}

func TestTreeRange(t *testing.T) {
	tr := New()
	pts := []geom.Point{
		geom.New(1, 1),
		geom.New(2, 2),
		geom.New(3, 3),
		geom.New(10, 10),
		geom.New(-5, -5),
	}
	for _, p := range pts {
		tr.Insert(p)
	}

	result := tr.Range(geom.NewRect(geom.New(0, 0), geom.New(5, 5)))
	got := collectAll(result)
	assert.ElementsMatch(t, []geom.Point{
		geom.New(1, 1), geom.New(2, 2), geom.New(3, 3),
	}, got)
}

func TestTreeRangeEmptyResult(t *testing.T) {
	tr := New()
	tr.Insert(geom.New(100, 100))
	result := tr.Range(geom.NewRect(geom.New(0, 0), geom.New(1, 1)))
	assert.True(t, result.Empty())
	assert.Equal(t, 0, result.Len())
}

func TestTreeNearest(t *testing.T) {
	tr := New()
	pts := []geom.Point{
		geom.New(2, 3),
		geom.New(5, 4),
		geom.New(9, 6),
		geom.New(4, 7),
		geom.New(8, 1),
		geom.New(7, 2),
	}
	for _, p := range pts {
		tr.Insert(p)
	}

	got, ok := tr.Nearest(geom.New(9, 2))
	require.True(t, ok)
	assert.Equal(t, geom.New(8, 1), got)
}

func TestTreeNearestKReturnsKClosest(t *testing.T) {
	tr := New()
	for _, p := range []geom.Point{
		geom.New(0, 0),
		geom.New(1, 0),
		geom.New(2, 0),
		geom.New(3, 0),
		geom.New(4, 0),
	} {
		tr.Insert(p)
	}

	result := tr.NearestK(geom.New(0, 0), 3)
	got := collectAll(result)
	assert.ElementsMatch(t, []geom.Point{
		geom.New(0, 0), geom.New(1, 0), geom.New(2, 0),
	}, got)
}

func TestTreeNearestKIncludesTies(t *testing.T) {
	tr := New()
	// (1,0) and (0,1) and (-1,0) and (0,-1) are all distance 1 from the
	// origin, which is not itself in the set; asking for the single
	// nearest neighbor must return all four tied points, not an
	// arbitrary one.
	for _, p := range []geom.Point{
		geom.New(1, 0),
		geom.New(0, 1),
		geom.New(-1, 0),
		geom.New(0, -1),
	} {
		tr.Insert(p)
	}

	result := tr.NearestK(geom.New(0, 0), 1)
	got := collectAll(result)
	assert.ElementsMatch(t, []geom.Point{
		geom.New(1, 0), geom.New(0, 1), geom.New(-1, 0), geom.New(0, -1),
	}, got)
}

func TestTreeNearestKClampsToSize(t *testing.T) {
	tr := New()
	tr.Insert(geom.New(1, 1))
	tr.Insert(geom.New(2, 2))

	result := tr.NearestK(geom.New(0, 0), 10)
	assert.Equal(t, 2, result.Len())
}

func TestTreeNearestKZeroOrEmpty(t *testing.T) {
	tr := New()
	assert.True(t, tr.NearestK(geom.New(0, 0), 5).Empty())

	tr.Insert(geom.New(1, 1))
	assert.True(t, tr.NearestK(geom.New(0, 0), 0).Empty())
}

func TestTreeEmptyNearestReportsFalse(t *testing.T) {
	tr := New()
	_, ok := tr.Nearest(geom.New(0, 0))
	assert.False(t, ok)
}

func TestTreeBeginEndWalkVisitsEveryPoint(t *testing.T) {
	tr := New()
	pts := []geom.Point{
		geom.New(5, 1), geom.New(1, 9), geom.New(3, 3), geom.New(9, 0),
	}
	for _, p := range pts {
		tr.Insert(p)
	}

	assert.ElementsMatch(t, pts, collectAll(tr))
	assert.True(t, tr.End().Done())
}
