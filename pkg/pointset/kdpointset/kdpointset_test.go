package kdpointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/pointset/pkg/geom"
)

func drain(it interface{ Next() (geom.Point, bool) }) []geom.Point {
	var out []geom.Point
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestSetPutAndContains(t *testing.T) {
	s := New()
	assert.True(t, s.Empty())

	for i := 0; i < 50; i++ {
		s.Put(geom.New(float64(i), float64(i*2%11)))
	}
	assert.Equal(t, 50, s.Size())
	assert.True(t, s.Contains(geom.New(10, 20%11)))
	assert.False(t, s.Contains(geom.New(999, 999)))
}

func TestSetRangeReturnsFreshResult(t *testing.T) {
	s := New()
	for _, p := range []geom.Point{
		geom.New(1, 1), geom.New(5, 5), geom.New(2, 2), geom.New(-1, -1),
	} {
		s.Put(p)
	}

	it := s.Range(geom.NewRect(geom.New(0, 0), geom.New(3, 3)))
	// Mutating the source set afterward must not affect an already
	// obtained iterator, since it walks its own result tree.
	s.Put(geom.New(100, 100))

	got := drain(it)
	assert.ElementsMatch(t, []geom.Point{geom.New(1, 1), geom.New(2, 2)}, got)
}

func TestSetNearestAndNearestK(t *testing.T) {
	s := New()
	for _, p := range []geom.Point{
		geom.New(2, 3), geom.New(5, 4), geom.New(9, 6), geom.New(4, 7), geom.New(8, 1), geom.New(7, 2),
	} {
		s.Put(p)
	}

	got, ok := s.Nearest(geom.New(9, 2))
	require.True(t, ok)
	assert.Equal(t, geom.New(8, 1), got)

	k := drain(s.NearestK(geom.New(0, 0), 2))
	assert.ElementsMatch(t, []geom.Point{geom.New(2, 3), geom.New(5, 4)}, k)
}

func TestSetEmptyQueries(t *testing.T) {
	s := New()
	_, ok := s.Nearest(geom.New(0, 0))
	assert.False(t, ok)
	assert.Empty(t, drain(s.NearestK(geom.New(0, 0), 3)))
	assert.Empty(t, drain(s.Range(geom.NewRect(geom.New(0, 0), geom.New(1, 1)))))
}
