package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset/bruteforce"
)

func TestPointFormat(t *testing.T) {
	var b strings.Builder
	require := assert.New(t)
	require.NoError(Point(&b, geom.New(1, 2)))
	require.Equal("(1, 2)\n", b.String())
}

func TestRectFormat(t *testing.T) {
	var b strings.Builder
	assert.NoError(t, Rect(&b, geom.NewRect(geom.New(0, 0), geom.New(1, 1))))
	assert.Equal(t, "{ (0, 0), (1, 1) }\n", b.String())
}

func TestSetIsBraceWrapped(t *testing.T) {
	s := bruteforce.New()
	s.Put(geom.New(1, 1))
	s.Put(geom.New(2, 2))

	var b strings.Builder
	assert.NoError(t, Set(&b, s))

	assert.Equal(t, "{ (1, 1)\n(2, 2)\n }", b.String())
}

func TestSetEmpty(t *testing.T) {
	s := bruteforce.New()

	var b strings.Builder
	assert.NoError(t, Set(&b, s))
	assert.Equal(t, "{  }", b.String())
}
