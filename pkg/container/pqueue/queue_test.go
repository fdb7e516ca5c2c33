package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueKeepsLowestPriorityUnderCap(t *testing.T) {
	q := New(WithCap(3))
	q.Push("a", 5)
	q.Push("b", 1)
	q.Push("c", 9)
	q.Push("d", 2)
	q.Push("e", 7)

	require.Equal(t, 3, q.Len())
	assert.True(t, q.Full())

	boundary, ok := q.MaxPriority()
	require.True(t, ok)
	assert.Equal(t, 5.0, boundary)
}

func TestQueueUnboundedNeverFull(t *testing.T) {
	q := New()
	for i := 0; i < 10; i++ {
		q.Push(i, float64(i))
	}
	assert.Equal(t, 10, q.Len())
	assert.False(t, q.Full())
}

func TestQueueMaxPriorityEmpty(t *testing.T) {
	q := New(WithCap(2))
	_, ok := q.MaxPriority()
	assert.False(t, ok)
}
