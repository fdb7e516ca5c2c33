package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Distance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{name: "same point", p: New(1, 1), q: New(1, 1), expected: 0},
		{name: "unit diagonal", p: New(0, 0), q: New(1, 1), expected: 1.4142135623730951},
		{name: "horizontal", p: New(0, 0), q: New(3, 0), expected: 3},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, test.expected, test.p.Distance(test.q), 1e-12)
		})
	}
}

func TestPoint_Less(t *testing.T) {
	t.Parallel()
	assert.True(t, New(0, 0).Less(New(0, 1)))
	assert.True(t, New(0, 5).Less(New(1, 0)))
	assert.False(t, New(1, 0).Less(New(0, 5)))
	assert.False(t, New(1, 1).Less(New(1, 1)))
}

func TestPoint_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		p, q     Point
		expected bool
	}{
		{name: "identical", p: New(0.5, 0.5), q: New(0.5, 0.5), expected: true},
		{name: "within epsilon", p: New(1, 1), q: New(1+epsilon/2, 1), expected: true},
		{name: "beyond epsilon", p: New(1, 1), q: New(1.0001, 1), expected: false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, test.p.Equal(test.q))
		})
	}
}

func TestPoint_Compare(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, New(0, 0).Compare(New(1, 0)))
	assert.Equal(t, 1, New(1, 0).Compare(New(0, 0)))
	assert.Equal(t, 0, New(1, 1).Compare(New(1, 1)))
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(0.5, 0.25)", New(0.5, 0.25).String())
}
