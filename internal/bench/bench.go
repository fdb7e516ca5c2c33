// Package bench drives a mix of concurrent Range and NearestK queries
// against one already-loaded point set, demonstrating the concurrency
// guarantee spec.md §5 makes: queries against an unmutated set are safe
// to run from many goroutines at once because each builds and owns its
// own result.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// Config controls how many concurrent queries Run fans out and over
// what coordinate range it generates them.
type Config struct {
	Queries   int
	Bound     float64
	NearestK  int
	RangeSide float64
}

// DefaultConfig matches spec.md §8 scenario 7: 200 concurrent queries.
func DefaultConfig() Config {
	return Config{Queries: 200, Bound: 1000, NearestK: 5, RangeSide: 50}
}

// Result summarizes one Run.
type Result struct {
	Queries  int
	Elapsed  time.Duration
	PointSum int
}

// Run issues cfg.Queries concurrent Range/NearestK queries against set,
// alternating between the two, and waits for all of them to finish. It
// never calls Put, so it is safe to run against a set that other
// goroutines are only reading.
//
// Coordinates are drawn from rng up front, sequentially: *rand.Rand is
// not safe for concurrent use, and the query goroutines below run in
// parallel.
func Run(ctx context.Context, set pointset.PointSet, cfg Config, rng *rand.Rand) (Result, error) {
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	xs := make([]float64, cfg.Queries)
	ys := make([]float64, cfg.Queries)
	for i := 0; i < cfg.Queries; i++ {
		xs[i] = rng.Float64()*2*cfg.Bound - cfg.Bound
		ys[i] = rng.Float64()*2*cfg.Bound - cfg.Bound
	}

	counts := make([]int, cfg.Queries)
	for i := 0; i < cfg.Queries; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			x, y := xs[i], ys[i]

			if i%2 == 0 {
				rect := geom.NewRect(
					geom.New(x, y),
					geom.New(x+cfg.RangeSide, y+cfg.RangeSide),
				)
				counts[i] = countAll(set.Range(rect))
				return nil
			}

			counts[i] = countAll(set.NearestK(geom.New(x, y), cfg.NearestK))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("concurrent query batch: %w", err)
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}
	return Result{Queries: cfg.Queries, Elapsed: time.Since(start), PointSum: sum}, nil
}

func countAll(it pointset.Iterator) int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
