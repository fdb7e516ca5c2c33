// Package querycache memoizes Range and NearestK results behind redis,
// keyed by the query's own parameters. It sits in front of a
// pkg/pointset.PointSet purely as a read-through cache — it never
// changes query semantics, only how often they're recomputed.
package querycache

import (
	"bytes"
	"context"
	"fmt"
	"time"

	xdr2 "github.com/davecgh/go-xdr/xdr2"
	"github.com/go-redis/redis/v8"

	"github.com/go-sod/pointset/internal/byteutil"
	"github.com/go-sod/pointset/pkg/geom"
)

// Config names the redis endpoint to cache against. An empty Addr
// disables caching outright.
type Config struct {
	Addr string        `toml:"addr" env:"POINTSET_REDIS_ADDR,default="`
	TTL  time.Duration `toml:"ttl" env:"POINTSET_CACHE_TTL,default=30s"`
}

type xdrPoint struct {
	X float64
	Y float64
}

// Cache is a read-through cache of point query results. The zero value
// (and any Cache built from a Config with an empty Addr) behaves as a
// disabled cache: every Get misses and every Set is a no-op, so callers
// never need to special-case "caching is off".
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a Cache backed by cfg. If cfg.Addr is empty the returned
// Cache is disabled.
func New(cfg Config) *Cache {
	if cfg.Addr == "" {
		return &Cache{}
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr}),
		ttl:    cfg.TTL,
	}
}

// Close releases the underlying redis client, if any.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// RangeKey builds the cache key for a rectangular range query.
func RangeKey(r geom.Rect) string {
	return fmt.Sprintf("range:%v:%v:%v:%v", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// NearestKey builds the cache key for a k-nearest-neighbor query.
func NearestKey(p geom.Point, k int) string {
	return fmt.Sprintf("nearest:%v:%v:%d", p.X, p.Y, k)
}

// Get returns the points cached under key, and false on a miss or when
// caching is disabled.
func (c *Cache) Get(ctx context.Context, key string) ([]geom.Point, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var stored []xdrPoint
	if _, err := xdr2.Unmarshal(bytes.NewReader(raw), &stored); err != nil {
		return nil, false
	}
	out := make([]geom.Point, len(stored))
	for i, p := range stored {
		out[i] = geom.New(p.X, p.Y)
	}
	return out, true
}

// Set stores points under key, if caching is enabled.
func (c *Cache) Set(ctx context.Context, key string, points []geom.Point) error {
	if c.client == nil {
		return nil
	}

	stored := make([]xdrPoint, len(points))
	for i, p := range points {
		stored[i] = xdrPoint{X: p.X, Y: p.Y}
	}
	buf := byteutil.GetBytesBuf()
	defer byteutil.PutBytesBuf(buf)
	buf.Reset()
	if _, err := xdr2.Marshal(buf, stored); err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}
	return c.client.Set(ctx, key, buf.Bytes(), c.ttl).Err()
}
