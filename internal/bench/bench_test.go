package bench

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset/kdpointset"
)

func TestRunConcurrentQueries(t *testing.T) {
	set := kdpointset.New()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		set.Put(geom.New(rng.Float64()*2000-1000, rng.Float64()*2000-1000))
	}

	cfg := DefaultConfig()
	cfg.Queries = 40

	result, err := Run(context.Background(), set, cfg, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	assert.Equal(t, 40, result.Queries)
	assert.GreaterOrEqual(t, result.PointSum, 0)
}

func TestRunRespectsCanceledContext(t *testing.T) {
	set := kdpointset.New()
	set.Put(geom.New(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultConfig()
	cfg.Queries = 10
	_, err := Run(ctx, set, cfg, rand.New(rand.NewSource(3)))
	assert.Error(t, err)
}
