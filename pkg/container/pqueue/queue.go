// Package pqueue implements a priority queue bounded at a fixed
// capacity: pushing past capacity keeps only the best-ranked entries
// under its sort order. It backs the k-d tree's bounded k-nearest-
// neighbor candidate set (pkg/container/kdtree) and the reference point
// set's k-NN scan (pkg/pointset/bruteforce).
package pqueue

import (
	"sort"
)

// WithCap bounds the queue at size entries: pushing past capacity keeps
// only the size entries with the lowest priority.
func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type Option func(*Queue)

type item struct {
	value interface{}
	prior float64
}

// New returns an empty Queue. Without WithCap it is unbounded.
func New(opts ...Option) *Queue {
	p := &Queue{items: &[]*item{}, cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Queue holds values ranked by ascending priority, optionally bounded to
// its lowest-priority cap entries.
type Queue struct {
	cap   int
	items *[]*item
}

// Push inserts val at priority, re-sorting and, if the queue is
// capped, dropping whichever entries now rank past the cap.
func (q *Queue) Push(val interface{}, priority float64) {
	*q.items = append(*q.items, &item{value: val, prior: priority})
	sort.Sort(q)
	if q.cap < 0 {
		return
	}
	if q.cap < len(*q.items) {
		*q.items = (*q.items)[:q.cap]
	}
}

func (q *Queue) Len() int { return len(*q.items) }

func (q *Queue) Swap(i, j int) { (*q.items)[i], (*q.items)[j] = (*q.items)[j], (*q.items)[i] }

func (q *Queue) Less(i, j int) bool {
	return (*q.items)[i].prior < (*q.items)[j].prior
}

// MaxPriority returns the priority of the worst-ranked (highest
// priority) entry currently held, and false if the queue is empty.
func (q *Queue) MaxPriority() (float64, bool) {
	n := len(*q.items)
	if n == 0 {
		return 0, false
	}
	return (*q.items)[n-1].prior, true
}

// Full reports whether the queue is holding as many entries as its cap
// allows. An unbounded queue (cap < 0) is never full.
func (q *Queue) Full() bool {
	return q.cap >= 0 && len(*q.items) >= q.cap
}
