package bruteforce

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

	s.Put(geom.New(1, 2))
	s.Put(geom.New(3, 4))
	s.Put(geom.New(1, 2))

	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(geom.New(1, 2)))
	assert.False(t, s.Contains(geom.New(9, 9)))
}

func TestSetRange(t *testing.T) {
	s := New()
	for _, p := range []geom.Point{
		geom.New(1, 1), geom.New(5, 5), geom.New(2, 2), geom.New(-1, -1),
	} {
		s.Put(p)
	}

	got := drain(s.Range(geom.NewRect(geom.New(0, 0), geom.New(3, 3))))
	assert.ElementsMatch(t, []geom.Point{geom.New(1, 1), geom.New(2, 2)}, got)
}

func TestSetNearest(t *testing.T) {
	s := New()
	for _, p := range []geom.Point{geom.New(0, 0), geom.New(10, 10), geom.New(1, 1)} {
		s.Put(p)
	}
	got, ok := s.Nearest(geom.New(1, 2))
	require.True(t, ok)
	assert.Equal(t, geom.New(1, 1), got)
}

func TestSetNearestEmpty(t *testing.T) {
	s := New()
	_, ok := s.Nearest(geom.New(0, 0))
	assert.False(t, ok)
}

func TestSetNearestKIncludesTies(t *testing.T) {
	s := New()
	// None of these is the query point itself, so all four are tied at
	// distance 1 and none is strictly closer.
	for _, p := range []geom.Point{
		geom.New(1, 0), geom.New(0, 1), geom.New(-1, 0), geom.New(0, -1),
	} {
		s.Put(p)
	}

	got := drain(s.NearestK(geom.New(0, 0), 1))
	assert.ElementsMatch(t, []geom.Point{
		geom.New(1, 0), geom.New(0, 1), geom.New(-1, 0), geom.New(0, -1),
	}, got)
}

func TestSetBeginWalksAscending(t *testing.T) {
	s := New()
	pts := []geom.Point{geom.New(3, 0), geom.New(1, 0), geom.New(2, 0)}
	for _, p := range pts {
		s.Put(p)
	}

	got := drain(s.Begin())
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Less(got[i]))
	}
}
